// internal/system/visual_effect.go
package system

import (
	"go-raycast-shooter/internal/config"
	"go-raycast-shooter/internal/entity"
	"go-raycast-shooter/internal/event"
	"go-raycast-shooter/internal/types"
)

// VisualEffectSystem управляет визуальными эффектами: вспышками урона и маркером попадания.
// Лазер здесь не живёт, его гасит отложенная задача оружия.
type VisualEffectSystem struct {
	ecs       *entity.ECS
	hitMarker float64 // Сколько ещё секунд показывать маркер
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.TargetHit, s)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.HitData); ok && data.Damageable {
		s.hitMarker = config.HitMarkerDuration
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Обновляем таймеры вспышек урона
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}
	if s.hitMarker > 0 {
		s.hitMarker -= deltaTime
		if s.hitMarker < 0 {
			s.hitMarker = 0
		}
	}
}

// Flash - сила вспышки урона от 1 (только что) до 0 (нет вспышки).
func (s *VisualEffectSystem) Flash(id types.EntityID) float64 {
	flash, ok := s.ecs.DamageFlashes[id]
	if !ok || flash.Duration <= 0 {
		return 0
	}
	return flash.Timer / flash.Duration
}

// HitMarker - сила маркера попадания от 1 до 0.
func (s *VisualEffectSystem) HitMarker() float64 {
	return s.hitMarker / config.HitMarkerDuration
}

// Reset гасит все эффекты.
func (s *VisualEffectSystem) Reset() {
	for id := range s.ecs.DamageFlashes {
		delete(s.ecs.DamageFlashes, id)
	}
	s.hitMarker = 0
}
