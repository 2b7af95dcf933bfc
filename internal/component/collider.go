// internal/component/collider.go
package component

import "github.com/go-gl/mathgl/mgl64"

// BoxCollider - выровненный по осям бокс вокруг Transform.Position.
type BoxCollider struct {
	HalfExtents mgl64.Vec3
	Enabled     bool // Выключенный коллайдер лучи не видят
}

// Bounds возвращает минимальный и максимальный углы бокса для центра center.
func (c *BoxCollider) Bounds(center mgl64.Vec3) (lo, hi mgl64.Vec3) {
	return center.Sub(c.HalfExtents), center.Add(c.HalfExtents)
}
