// internal/component/rigidbody.go
package component

import "github.com/go-gl/mathgl/mgl64"

// RigidBody - компонент физического тела.
type RigidBody struct {
	Mass        float64
	Velocity    mgl64.Vec3
	Drag        float64 // Линейное сопротивление, 1/с
	Restitution float64 // Упругость при ударе о землю (0..1)
	Friction    float64 // Трение о землю, 1/с
	UseGravity  bool
	Kinematic   bool // Кинематическое тело не реагирует на силы

	force mgl64.Vec3 // Накопленная за шаг сила
}

// AddForce накапливает силу до следующего шага физики.
func (b *RigidBody) AddForce(force mgl64.Vec3) {
	if b.Kinematic {
		return
	}
	b.force = b.force.Add(force)
}

// PendingForce - сила, накопленная с прошлого шага.
func (b *RigidBody) PendingForce() mgl64.Vec3 {
	return b.force
}

// ConsumeForce возвращает накопленную силу и обнуляет её.
func (b *RigidBody) ConsumeForce() mgl64.Vec3 {
	f := b.force
	b.force = mgl64.Vec3{}
	return f
}
