// component/render.go
package component

import "image/color"

// Renderable - компонент для отрисовки бокса
type Renderable struct {
	Model  string // ID типа, по которому хост находит модель
	Color  color.RGBA
	Wire   bool // Рисовать обводку рёбер
	Hidden bool
}
