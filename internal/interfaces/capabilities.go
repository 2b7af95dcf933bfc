package interfaces

import (
	"go-raycast-shooter/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

//go:generate go tool mockgen -destination=./mocks/capabilities_mock.go -package=mocks . Damageable,ForceReceiver

// Damageable - объект, у которого можно отнять здоровье.
type Damageable interface {
	Damage(amount int)
}

// ForceReceiver - физически симулируемое тело, которому можно приложить силу.
type ForceReceiver interface {
	AddForce(force mgl64.Vec3)
}

// RaycastHit описывает ближайшее пересечение луча со сценой.
// Target и Body опциональны: nil означает, что у объекта нет такой возможности.
type RaycastHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3 // Наружная нормаль поверхности в точке попадания
	Distance float64
	Entity   types.EntityID
	Target   Damageable
	Body     ForceReceiver
}
