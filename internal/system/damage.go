// internal/system/damage.go
package system

import (
	"go-raycast-shooter/internal/component"
	"go-raycast-shooter/internal/config"
	"go-raycast-shooter/internal/entity"
	"go-raycast-shooter/internal/event"
	"go-raycast-shooter/internal/interfaces"
	"go-raycast-shooter/internal/types"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// DamageSystem ведёт здоровье мишеней и выключает разрушенные.
type DamageSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger
}

func NewDamageSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, log zerolog.Logger) *DamageSystem {
	return &DamageSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		log:             log.With().Str("component", "damage").Logger(),
	}
}

// ApplyDamage наносит урон мишени. Возвращает true, если этим уроном мишень разрушена.
func (s *DamageSystem) ApplyDamage(entityID types.EntityID, damage int) bool {
	shootable, ok := s.ecs.Shootables[entityID]
	if !ok || !shootable.Active {
		return false
	}
	// Нулевой урон ничего не меняет, даже вспышки нет
	if damage <= 0 {
		return false
	}

	shootable.Health -= damage
	if shootable.Health > 0 {
		// Добавляем или сбрасываем компонент "вспышки"
		s.ecs.DamageFlashes[entityID] = &component.DamageFlash{
			Timer:    config.DamageFlashDuration,
			Duration: config.DamageFlashDuration,
		}
		return false
	}

	shootable.Health = 0
	s.deactivate(entityID, shootable)
	return true
}

// deactivate убирает мишень из физической сцены и с экрана до сброса полигона.
func (s *DamageSystem) deactivate(entityID types.EntityID, shootable *component.Shootable) {
	shootable.Active = false
	if collider, ok := s.ecs.Colliders[entityID]; ok {
		collider.Enabled = false
	}
	if render, ok := s.ecs.Renderables[entityID]; ok {
		render.Hidden = true
	}
	if body, ok := s.ecs.Bodies[entityID]; ok {
		body.Velocity = mgl64.Vec3{}
		body.ConsumeForce()
	}
	delete(s.ecs.DamageFlashes, entityID)

	s.log.Info().
		Uint64("entity", uint64(entityID)).
		Str("name", s.ecs.Name(entityID)).
		Str("kind", shootable.Kind).
		Msg("target destroyed")
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.TargetDestroyed,
			Data: event.DestroyedData{Entity: entityID, Kind: shootable.Kind},
		})
	}
}

// Target возвращает разрушаемую мишень или nil, если сущность не мишень или уже разрушена.
func (s *DamageSystem) Target(entityID types.EntityID) interfaces.Damageable {
	shootable, ok := s.ecs.Shootables[entityID]
	if !ok || !shootable.Active {
		return nil
	}
	return target{system: s, id: entityID}
}

// target связывает сущность с системой урона.
type target struct {
	system *DamageSystem
	id     types.EntityID
}

func (t target) Damage(amount int) {
	t.system.ApplyDamage(t.id, amount)
}
