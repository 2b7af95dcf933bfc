// pkg/render/topdown.go
package render

import "github.com/go-gl/mathgl/mgl64"

// TopDown проецирует мир на экран сверху: ось Z уходит вверх экрана,
// ось X влево, как у камеры с нулевым yaw. Высота Y отбрасывается.
type TopDown struct {
	OriginX, OriginY float64 // Куда на экране попадает мировой (0, 0)
	Scale            float64 // Пикселей на метр
}

func (p TopDown) ToScreen(v mgl64.Vec3) (x, y float32) {
	return float32(p.OriginX - v.X()*p.Scale), float32(p.OriginY - v.Z()*p.Scale)
}

// Rect возвращает левый верхний угол и размер прямоугольника под коробкой.
func (p TopDown) Rect(center, halfExtents mgl64.Vec3) (x, y, w, h float32) {
	cx, cy := p.ToScreen(center)
	w = float32(2 * halfExtents.X() * p.Scale)
	h = float32(2 * halfExtents.Z() * p.Scale)
	return cx - w/2, cy - h/2, w, h
}
