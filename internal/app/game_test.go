package app

import (
	"testing"

	"go-raycast-shooter/internal/audio"
	"go-raycast-shooter/internal/config"
	"go-raycast-shooter/internal/defs"
	"go-raycast-shooter/internal/system"
	"go-raycast-shooter/internal/types"
	"go-raycast-shooter/internal/weapon"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgeInput отдаёт нажатие один раз, как фронт кнопки.
type edgeInput struct {
	pressed bool
}

func (i *edgeInput) FirePressed() bool {
	p := i.pressed
	i.pressed = false
	return p
}

func laneRange() *defs.RangeDefinition {
	return &defs.RangeDefinition{
		Name: "lane",
		Kinds: []defs.TargetKind{
			{ID: "crate", Size: defs.Vec3{1, 1, 1}, Health: 3, Mass: 1},
			{ID: "wall", Size: defs.Vec3{10, 4, 1}},
		},
		Placements: []defs.Placement{
			{Kind: "crate", Position: defs.Vec3{0, 1.6, 10}},
			{Kind: "wall", Position: defs.Vec3{0, 2, 30}},
		},
	}
}

func newTestGame(t *testing.T) (*Game, *edgeInput, *audio.SilentEmitter) {
	t.Helper()
	settings, err := config.Load("")
	require.NoError(t, err)

	input := &edgeInput{}
	emitter := &audio.SilentEmitter{}
	g, err := NewGame(Options{
		Settings: settings,
		Range:    laneRange(),
		Input:    input,
		Audio:    emitter,
		Logger:   zerolog.Nop(),
	})
	require.NoError(t, err)
	return g, input, emitter
}

func crateID(t *testing.T, g *Game) types.EntityID {
	t.Helper()
	require.Len(t, g.ECS.Shootables, 1)
	for id := range g.ECS.Shootables {
		return id
	}
	return 0
}

func TestGame_ShotHitsCrate(t *testing.T) {
	g, input, emitter := newTestGame(t)
	crate := crateID(t, g)

	input.pressed = true
	g.Update(0.016)

	assert.Equal(t, 2, g.ECS.Shootables[crate].Health)
	assert.Equal(t, 1, emitter.Plays())
	assert.Equal(t, system.Stats{Shots: 1, Hits: 1}, g.Stats())

	laser := g.Laser()
	assert.True(t, laser.Visible)
	assert.True(t, laser.Points[0].ApproxEqualThreshold(mgl64.Vec3{-0.25, 1.4, 0.6}, 1e-9), "muzzle: %v", laser.Points[0])
	assert.True(t, laser.Points[1].ApproxEqualThreshold(mgl64.Vec3{0, 1.6, 9.5}, 1e-9), "hit: %v", laser.Points[1])

	shot, ok := g.Weapon.LastShot()
	require.True(t, ok)
	assert.Equal(t, "9.5 m", shot.Label())
	vp := g.Camera.WorldToViewportPoint(shot.End)
	assert.InDelta(t, 0.5, vp.X(), 1e-9, "impact is under the crosshair")
	assert.InDelta(t, 0.5, vp.Y(), 1e-9)

	// Сила применяется на ближайшем шаге физики
	assert.Equal(t, mgl64.Vec3{0, 0, 100}, g.ECS.Bodies[crate].PendingForce())
	g.Update(0.016)
	assert.InDelta(t, 2.0, g.ECS.Bodies[crate].Velocity.Z(), 1e-9)
}

func TestGame_LaserHidesAfterEffect(t *testing.T) {
	g, input, _ := newTestGame(t)

	input.pressed = true
	g.Update(0.016)
	g.Update(0.05)
	assert.True(t, g.Laser().Visible)

	g.Update(0.03)
	assert.False(t, g.Laser().Visible)
	assert.Zero(t, g.Scheduler.Pending())
}

func TestGame_DestroysCrateAfterThreeHits(t *testing.T) {
	g, input, _ := newTestGame(t)
	crate := crateID(t, g)

	for i := 0; i < 60; i++ {
		input.pressed = true
		g.Update(0.02)
	}

	st := g.Stats()
	assert.Equal(t, 3, st.Hits)
	assert.Equal(t, 1, st.Kills)
	assert.Positive(t, st.SurfaceHits, "later shots reach the wall")
	assert.False(t, g.ECS.Shootables[crate].Active)
	assert.False(t, g.ECS.Colliders[crate].Enabled)
	assert.True(t, g.ECS.Renderables[crate].Hidden)
}

func TestGame_PauseFreezesClockAndEffects(t *testing.T) {
	g, input, emitter := newTestGame(t)

	input.pressed = true
	g.Update(0.016)
	require.True(t, g.Laser().Visible)

	g.SetPaused(true)
	input.pressed = true
	g.Update(1.0)

	assert.True(t, g.Paused())
	assert.Equal(t, 0.016, g.Now())
	assert.True(t, g.Laser().Visible, "hide waits for game time")
	assert.Equal(t, 1, emitter.Plays())

	g.SetPaused(false)
	input.pressed = false
	g.Update(0.1)
	assert.False(t, g.Laser().Visible)
}

func TestGame_Reset(t *testing.T) {
	g, input, _ := newTestGame(t)
	g.DamageSystem.ApplyDamage(crateID(t, g), 3)

	input.pressed = true
	g.Update(0.016)
	g.Camera.MoveFlat(5, 2)
	g.Camera.Rotate(1, 0.5)

	g.Reset()

	assert.Equal(t, system.Stats{}, g.Stats())
	assert.False(t, g.Laser().Visible)
	assert.Zero(t, g.Scheduler.Pending())
	assert.Contains(t, g.ECS.Lines, g.LaserID, "laser survives reset")

	crate := crateID(t, g)
	assert.True(t, g.ECS.Shootables[crate].Active)
	assert.Equal(t, 3, g.ECS.Shootables[crate].Health)
	assert.Len(t, g.ECS.Colliders, 2)

	assert.Equal(t, mgl64.Vec3{0, 1.6, 0}, g.Camera.Position)
	assert.Zero(t, g.Camera.Yaw)
	assert.Zero(t, g.Camera.Pitch)
}

func TestNewGame_FailsFast(t *testing.T) {
	settings, err := config.Load("")
	require.NoError(t, err)

	_, err = NewGame(Options{Range: laneRange()})
	assert.ErrorIs(t, err, ErrNoSettings)

	_, err = NewGame(Options{Settings: settings})
	assert.ErrorIs(t, err, ErrNoRange)

	_, err = NewGame(Options{
		Settings: settings,
		Range:    laneRange(),
		Audio:    &audio.SilentEmitter{},
	})
	assert.ErrorIs(t, err, weapon.ErrNoInput)
}

func TestSpawnRange_DefaultLayout(t *testing.T) {
	def, err := defs.DefaultRange()
	require.NoError(t, err)

	g, err := NewGame(Options{
		Settings: func() *config.Settings { s, _ := config.Load(""); return s }(),
		Range:    def,
		Input:    &edgeInput{},
		Audio:    &audio.SilentEmitter{},
		Logger:   zerolog.Nop(),
	})
	require.NoError(t, err)

	assert.Len(t, g.ECS.Colliders, len(def.Placements))
	for id, sh := range g.ECS.Shootables {
		kind, ok := def.Kind(sh.Kind)
		require.True(t, ok)
		assert.Equal(t, kind.Health, sh.Health, "entity %d", id)
	}
	for id, name := range g.ECS.Names {
		if name == "back wall" {
			assert.NotContains(t, g.ECS.Bodies, id)
			assert.NotContains(t, g.ECS.Shootables, id)
		}
	}
}
