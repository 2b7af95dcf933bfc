// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"go-raycast-shooter/internal/camera"
	"go-raycast-shooter/internal/component"
	"go-raycast-shooter/internal/config"
	"go-raycast-shooter/internal/defs"
	"go-raycast-shooter/internal/entity"
	"go-raycast-shooter/internal/event"
	"go-raycast-shooter/internal/interfaces"
	"go-raycast-shooter/internal/physics"
	"go-raycast-shooter/internal/scheduler"
	"go-raycast-shooter/internal/system"
	"go-raycast-shooter/internal/types"
	"go-raycast-shooter/internal/weapon"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

var (
	ErrNoSettings = errors.New("app: settings are required")
	ErrNoRange    = errors.New("app: range definition is required")
)

var _ interfaces.GameContext = (*Game)(nil)

// Options - всё, что хост передаёт игре. Input и Audio реализует хост.
type Options struct {
	Settings *config.Settings
	Range    *defs.RangeDefinition
	Input    weapon.Input
	Audio    weapon.AudioEmitter
	Logger   zerolog.Logger
}

// Game - полигон без привязки к окну: ECS, физика, планировщик и оружие.
// Хост вызывает Update раз в кадр и рисует то, что лежит в ECS.
type Game struct {
	ECS                *entity.ECS
	Physics            *physics.World
	Scheduler          *scheduler.Scheduler
	EventDispatcher    *event.Dispatcher
	DamageSystem       *system.DamageSystem
	VisualEffectSystem *system.VisualEffectSystem
	StatsSystem        *system.StatsSystem
	Camera             *camera.Camera
	Weapon             *weapon.Controller
	Range              *defs.RangeDefinition
	LaserID            types.EntityID

	settings *config.Settings
	rangeIDs []types.EntityID
	log      zerolog.Logger

	// Game state
	gameTime float64
	isPaused bool
}

// NewGame собирает полигон и оружие. Ошибка означает неполную сборку.
func NewGame(opts Options) (*Game, error) {
	if opts.Settings == nil {
		return nil, ErrNoSettings
	}
	if opts.Range == nil {
		return nil, ErrNoRange
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	s := opts.Settings
	g := &Game{
		ECS:             ecs,
		Physics:         physics.NewWorld(ecs),
		Scheduler:       scheduler.New(),
		EventDispatcher: eventDispatcher,
		Range:           opts.Range,
		settings:        s,
		log:             opts.Logger,
	}
	g.DamageSystem = system.NewDamageSystem(ecs, eventDispatcher, opts.Logger)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)
	g.StatsSystem = system.NewStatsSystem(eventDispatcher)

	aspect := float64(s.Window.Width) / float64(s.Window.Height)
	g.Camera = camera.New(mgl64.Vec3{}, s.Camera.Fovy, aspect, s.Camera.Near)
	g.placeCamera()

	g.LaserID = ecs.NewEntity()
	ecs.Names[g.LaserID] = "laser"
	ecs.Lines[g.LaserID] = &component.LineRender{
		Color: config.LaserColor,
		Width: 2,
	}

	controller, err := weapon.NewController(s.Weapon.Config, weapon.Deps{
		Camera:    g.Camera,
		Raycaster: system.NewSceneQuery(g.Physics, g.DamageSystem),
		Line:      ecs.Lines[g.LaserID],
		Audio:     opts.Audio,
		Input:     opts.Input,
		Clock:     g,
		Scheduler: g.Scheduler,
		GunEnd:    camera.Mount{Camera: g.Camera, Offset: s.Weapon.GunEnd.Vec()},
		Events:    eventDispatcher,
		Logger:    opts.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g.Weapon = controller

	g.rangeIDs = SpawnRange(ecs, opts.Range)
	g.log.Info().
		Str("range", opts.Range.Name).
		Int("objects", len(g.rangeIDs)).
		Msg("range loaded")
	return g, nil
}

// Now - игровое время в секундах. На паузе не идёт.
func (g *Game) Now() float64 {
	return g.gameTime
}

// Update progresses the game state by one frame.
// Сначала срабатывают отложенные задачи, затем оружие, затем физика.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || deltaTime < 0 {
		return
	}
	g.gameTime += deltaTime

	g.Scheduler.Advance(g.gameTime)
	g.Weapon.Update()
	g.Physics.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
}

// Laser - отрезок лазера для отрисовки.
func (g *Game) Laser() *component.LineRender {
	return g.ECS.Lines[g.LaserID]
}

// Stats - текущие счётчики стрельбы.
func (g *Game) Stats() system.Stats {
	return g.StatsSystem.Stats()
}

// Reset восстанавливает полигон, камеру и счётчики; гасит эффекты.
func (g *Game) Reset() {
	g.Scheduler.Clear()
	g.Weapon.Reset()
	g.VisualEffectSystem.Reset()

	for _, id := range g.rangeIDs {
		g.ECS.RemoveEntity(id)
	}
	g.rangeIDs = SpawnRange(g.ECS, g.Range)
	g.placeCamera()

	g.EventDispatcher.Dispatch(event.Event{Type: event.RangeReset})
	g.log.Info().Msg("range reset")
}

func (g *Game) SetPaused(paused bool) {
	g.isPaused = paused
}

func (g *Game) Paused() bool {
	return g.isPaused
}

// placeCamera ставит камеру в точку появления на высоту глаз.
func (g *Game) placeCamera() {
	spawn := g.Range.Spawn.Vec()
	g.Camera.Position = spawn.Add(mgl64.Vec3{0, g.settings.Camera.EyeHeight, 0})
	g.Camera.Yaw = mgl64.DegToRad(g.Range.SpawnYaw)
	g.Camera.Pitch = 0
}
