// internal/component/line.go
package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// LineRender - отрезок из двух точек, который рисует хост, пока Visible.
type LineRender struct {
	Points  [2]mgl64.Vec3
	Visible bool
	Color   color.RGBA
	Width   float32
}

// SetPosition задаёт точку отрезка. Индексы вне 0..1 игнорируются.
func (l *LineRender) SetPosition(index int, p mgl64.Vec3) {
	if index < 0 || index >= len(l.Points) {
		return
	}
	l.Points[index] = p
}

// SetVisible включает или выключает отрисовку.
func (l *LineRender) SetVisible(visible bool) {
	l.Visible = visible
}
