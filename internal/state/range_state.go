// internal/state/range_state.go
package state

import (
	"go-raycast-shooter/internal/app"
	"go-raycast-shooter/internal/assets"
	"go-raycast-shooter/internal/config"
	"go-raycast-shooter/internal/event"
	"go-raycast-shooter/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Убеждаемся, что RangeState соответствует интерфейсу State
var _ State = (*RangeState)(nil)

// RangeState - стрельба от первого лица: мышь крутит камеру, WASD двигает,
// ЛКМ стреляет, P/F9 пауза, R сброс полигона.
type RangeState struct {
	sm          *StateMachine
	game        *app.Game
	renderer    *SceneRenderer
	crosshair   *ui.CrosshairRL
	statsPanel  *ui.StatsPanelRL
	sensitivity float64
}

func NewRangeState(sm *StateMachine, game *app.Game, models *assets.ModelManager, settings *config.Settings) *RangeState {
	crosshair := ui.NewCrosshairRL(
		float32(settings.Window.Width)/2,
		float32(settings.Window.Height)/2,
		config.CrosshairSize,
		config.CrosshairGap,
	)
	game.EventDispatcher.Subscribe(event.ShotFired, crosshair)

	return &RangeState{
		sm:          sm,
		game:        game,
		renderer:    NewSceneRenderer(game, models),
		crosshair:   crosshair,
		statsPanel:  ui.NewStatsPanelRL(10, 36, 20),
		sensitivity: settings.Camera.Sensitivity,
	}
}

func (s *RangeState) Enter() {
	s.game.SetPaused(false)
	rl.DisableCursor()
}

func (s *RangeState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyF9) {
		s.sm.SetState(NewPauseState(s.sm, s, s.game))
		return
	}
	if rl.IsKeyPressed(rl.KeyR) {
		s.game.Reset()
		s.crosshair.Reset()
	}

	// Мышь вправо - поворот вправо, то есть yaw уменьшается
	delta := rl.GetMouseDelta()
	s.game.Camera.Rotate(-float64(delta.X)*s.sensitivity, -float64(delta.Y)*s.sensitivity)

	forward, strafe := 0.0, 0.0
	if rl.IsKeyDown(rl.KeyW) {
		forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		strafe++
	}
	if rl.IsKeyDown(rl.KeyA) {
		strafe--
	}
	step := config.MoveSpeed * deltaTime
	s.game.Camera.MoveFlat(forward*step, strafe*step)

	s.game.Update(deltaTime)
}

func (s *RangeState) Draw() {
	rl.BeginMode3D(s.renderer.Camera3D())
	s.renderer.Draw()
	rl.EndMode3D()
}

// DrawUI рисует прицел и статистику поверх сцены
func (s *RangeState) DrawUI() {
	s.crosshair.Draw(s.game.Now(), config.CrosshairColor, config.HitMarkerColor, s.game.VisualEffectSystem.HitMarker())
	s.statsPanel.Draw(s.game.Stats().Lines(), config.PanelColor, config.TextLightColor)
	s.drawImpactLabel()
}

// drawImpactLabel подписывает дистанцию рядом с точкой попадания, пока виден лазер.
func (s *RangeState) drawImpactLabel() {
	shot, ok := s.game.Weapon.LastShot()
	if !ok || !s.game.Laser().Visible {
		return
	}
	vp := s.game.Camera.WorldToViewportPoint(shot.End)
	if vp.Z() <= 0 {
		return
	}
	// Y вьюпорта растёт вверх, экранный вниз
	x := int32(vp.X() * float64(rl.GetScreenWidth()))
	y := int32((1 - vp.Y()) * float64(rl.GetScreenHeight()))
	rl.DrawText(shot.Label(), x+12, y-20, 16, colorToRL(config.TextLightColor))
}

func (s *RangeState) Exit() {
	rl.EnableCursor()
}
