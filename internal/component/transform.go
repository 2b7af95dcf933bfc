// internal/component/transform.go
package component

import "github.com/go-gl/mathgl/mgl64"

// Transform - компонент позиции в мировых координатах (центр объекта)
type Transform struct {
	Position mgl64.Vec3
}
