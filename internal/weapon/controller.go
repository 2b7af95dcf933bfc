package weapon

import (
	"errors"
	"fmt"

	"go-raycast-shooter/internal/event"
	"go-raycast-shooter/internal/scheduler"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// Ошибки отсутствующих зависимостей. Проверяются один раз в NewController.
var (
	ErrNoCamera    = errors.New("weapon: camera is required")
	ErrNoRaycaster = errors.New("weapon: raycaster is required")
	ErrNoLine      = errors.New("weapon: line renderer is required")
	ErrNoAudio     = errors.New("weapon: audio emitter is required")
	ErrNoInput     = errors.New("weapon: input is required")
	ErrNoClock     = errors.New("weapon: clock is required")
	ErrNoScheduler = errors.New("weapon: scheduler is required")
	ErrNoGunEnd    = errors.New("weapon: gun end anchor is required")
)

// viewportCenter - центр кадра на нулевой глубине
var viewportCenter = mgl64.Vec3{0.5, 0.5, 0}

// Deps - внешние зависимости контроллера. Events и Logger опциональны.
type Deps struct {
	Camera    Camera
	Raycaster Raycaster
	Line      LineRenderer
	Audio     AudioEmitter
	Input     Input
	Clock     Clock
	Scheduler Scheduler
	GunEnd    Anchor
	Events    *event.Dispatcher
	Logger    zerolog.Logger
}

func (d Deps) validate() error {
	switch {
	case d.Camera == nil:
		return ErrNoCamera
	case d.Raycaster == nil:
		return ErrNoRaycaster
	case d.Line == nil:
		return ErrNoLine
	case d.Audio == nil:
		return ErrNoAudio
	case d.Input == nil:
		return ErrNoInput
	case d.Clock == nil:
		return ErrNoClock
	case d.Scheduler == nil:
		return ErrNoScheduler
	case d.GunEnd == nil:
		return ErrNoGunEnd
	}
	return nil
}

// Shot - итог одного выстрела. Контроллер помнит только последний.
type Shot struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
	End       mgl64.Vec3
	Distance  float64 // До точки попадания или weaponRange при промахе
	Hit       bool
}

// Label - подпись для HUD: дистанция попадания или "miss".
func (s Shot) Label() string {
	if !s.Hit {
		return "miss"
	}
	return fmt.Sprintf("%.1f m", s.Distance)
}

// Controller - оружие с лучевым выстрелом из центра камеры.
type Controller struct {
	cfg  Config
	deps Deps
	log  zerolog.Logger

	nextFire    float64 // Время, начиная с которого разрешён следующий выстрел
	pendingHide scheduler.TaskID
	hasPending  bool
	shots       int
	last        Shot
	hasLast     bool
}

// NewController проверяет конфигурацию и зависимости и создаёт контроллер.
// Первый выстрел разрешён сразу.
func NewController(cfg Config, deps Deps) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := deps.validate(); err != nil {
		deps.Logger.Error().Err(err).Msg("weapon controller wiring failed")
		return nil, fmt.Errorf("new weapon controller: %w", err)
	}
	return &Controller{
		cfg:  cfg,
		deps: deps,
		log:  deps.Logger.With().Str("component", "weapon").Logger(),
	}, nil
}

// Config возвращает текущие параметры.
func (c *Controller) Config() Config {
	return c.cfg
}

// NextFireTime - момент, начиная с которого можно стрелять.
func (c *Controller) NextFireTime() float64 {
	return c.nextFire
}

// Ready сообщает, разрешён ли выстрел в момент now.
func (c *Controller) Ready(now float64) bool {
	return now >= c.nextFire
}

// ShotsFired - сколько выстрелов сделано за жизнь контроллера.
func (c *Controller) ShotsFired() int {
	return c.shots
}

// Update вызывается хостом раз в кадр. Стреляет, если кнопка нажата
// в этом кадре и интервал уже прошёл.
func (c *Controller) Update() {
	if !c.deps.Input.FirePressed() {
		return
	}
	now := c.deps.Clock.Now()
	if !c.Ready(now) {
		return
	}
	c.Fire(now)
}

// Fire производит выстрел в момент now без проверки ввода и интервала.
func (c *Controller) Fire(now float64) Shot {
	c.nextFire = now + c.cfg.FireRate
	c.shots++

	c.startEffect()

	origin := c.deps.Camera.ViewportToWorldPoint(viewportCenter)
	direction := c.deps.Camera.Forward()

	c.deps.Line.SetPosition(0, c.deps.GunEnd.Position())

	shot := Shot{Origin: origin, Direction: direction}
	hit, ok := c.deps.Raycaster.Raycast(origin, direction, c.cfg.WeaponRange)
	if ok {
		shot.Hit = true
		shot.End = hit.Point
		shot.Distance = hit.Distance
		c.deps.Line.SetPosition(1, hit.Point)

		damage := 0
		if hit.Target != nil {
			hit.Target.Damage(c.cfg.GunDamage)
			damage = c.cfg.GunDamage
		}
		if hit.Body != nil {
			// Нормаль смотрит из поверхности, толкаем внутрь
			hit.Body.AddForce(hit.Normal.Mul(-c.cfg.HitForce))
		}

		c.log.Debug().
			Uint64("entity", uint64(hit.Entity)).
			Float64("distance", hit.Distance).
			Int("damage", damage).
			Bool("pushed", hit.Body != nil).
			Msg("shot hit")
		c.dispatch(event.TargetHit, event.HitData{
			Entity:     hit.Entity,
			Point:      hit.Point,
			Distance:   hit.Distance,
			Damage:     damage,
			Damageable: hit.Target != nil,
			Pushed:     hit.Body != nil,
		})
	} else {
		shot.End = origin.Add(direction.Mul(c.cfg.WeaponRange))
		shot.Distance = c.cfg.WeaponRange
		c.deps.Line.SetPosition(1, shot.End)
		c.log.Debug().Msg("shot missed")
	}

	// Обе точки уже записаны, можно показывать
	c.deps.Line.SetVisible(true)

	data := event.ShotData{Time: now, Origin: origin, Direction: direction, End: shot.End}
	c.dispatch(event.ShotFired, data)
	if !ok {
		c.dispatch(event.ShotMissed, data)
	}
	c.last, c.hasLast = shot, true
	return shot
}

// LastShot - последний выстрел; false, если стрельбы ещё не было или был Reset.
func (c *Controller) LastShot() (Shot, bool) {
	return c.last, c.hasLast
}

// startEffect проигрывает звук и ставит задачу скрытия лазера.
func (c *Controller) startEffect() {
	c.deps.Audio.Play()

	switch c.cfg.Overlap {
	case OverlapIndependent:
		c.deps.Scheduler.After(c.cfg.EffectDuration, c.hideLine)
	default:
		if c.hasPending {
			c.deps.Scheduler.Cancel(c.pendingHide)
		}
		c.hasPending = true
		c.pendingHide = c.deps.Scheduler.After(c.cfg.EffectDuration, func() {
			c.hasPending = false
			c.hideLine()
		})
	}
}

func (c *Controller) hideLine() {
	c.deps.Line.SetVisible(false)
}

// Reset забывает отложенное скрытие (планировщик уже очищен хостом)
// и гасит лазер. Интервал стрельбы не сбрасывается.
func (c *Controller) Reset() {
	c.hasPending = false
	c.pendingHide = 0
	c.last, c.hasLast = Shot{}, false
	c.hideLine()
}

func (c *Controller) dispatch(t event.EventType, data interface{}) {
	if c.deps.Events == nil {
		return
	}
	c.deps.Events.Dispatch(event.Event{Type: t, Data: data})
}
