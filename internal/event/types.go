// internal/event/types.go
package event

import (
	"go-raycast-shooter/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	ShotFired       EventType = "ShotFired"       // Выстрел произведён
	ShotMissed      EventType = "ShotMissed"      // Луч никуда не попал
	TargetHit       EventType = "TargetHit"       // Луч попал в объект
	TargetDestroyed EventType = "TargetDestroyed" // Мишень разрушена
	RangeReset      EventType = "RangeReset"      // Полигон сброшен
)

// ShotData - данные ShotFired и ShotMissed.
type ShotData struct {
	Time      float64
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
	End       mgl64.Vec3 // Вторая точка лазера
}

// HitData - данные TargetHit.
type HitData struct {
	Entity     types.EntityID
	Point      mgl64.Vec3
	Distance   float64
	Damage     int  // 0, если объект неразрушаемый
	Damageable bool // Попадание в мишень, а не в стену или ящик
	Pushed     bool // К объекту приложена сила
}

// DestroyedData - данные TargetDestroyed.
type DestroyedData struct {
	Entity types.EntityID
	Kind   string
}
