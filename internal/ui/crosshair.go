// internal/ui/crosshair.go
package ui

import (
	"image/color"

	"go-raycast-shooter/internal/event"
	"go-raycast-shooter/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CrosshairRL - прицел в центре экрана. После выстрела коротко раздувается.
type CrosshairRL struct {
	X, Y     float32
	Size     float32
	Gap      float32
	LastShot float64 // Игровое время последнего выстрела
	fired    bool
}

func NewCrosshairRL(x, y, size, gap float32) *CrosshairRL {
	return &CrosshairRL{
		X:    x,
		Y:    y,
		Size: size,
		Gap:  gap,
	}
}

// HandleShot запоминает момент выстрела для анимации.
func (c *CrosshairRL) HandleShot(now float64) {
	c.LastShot = now
	c.fired = true
}

// OnEvent ловит ShotFired.
func (c *CrosshairRL) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.ShotData); ok {
		c.HandleShot(data.Time)
	}
}

// Draw отрисовывает прицел. hitMarker от 0 до 1 - сила маркера попадания.
func (c *CrosshairRL) Draw(now float64, base, hit color.RGBA, hitMarker float64) {
	scale := float32(1)
	if c.fired {
		scale = float32(render.PulseScale(now - c.LastShot))
	}
	gap := c.Gap * scale
	size := c.Size * scale
	col := rl.NewColor(base.R, base.G, base.B, base.A)

	rl.DrawLineEx(rl.NewVector2(c.X-gap-size, c.Y), rl.NewVector2(c.X-gap, c.Y), 2, col)
	rl.DrawLineEx(rl.NewVector2(c.X+gap, c.Y), rl.NewVector2(c.X+gap+size, c.Y), 2, col)
	rl.DrawLineEx(rl.NewVector2(c.X, c.Y-gap-size), rl.NewVector2(c.X, c.Y-gap), 2, col)
	rl.DrawLineEx(rl.NewVector2(c.X, c.Y+gap), rl.NewVector2(c.X, c.Y+gap+size), 2, col)

	if hitMarker <= 0 {
		return
	}
	// Диагональный крест поверх прицела
	marker := rl.NewColor(hit.R, hit.G, hit.B, uint8(float64(hit.A)*hitMarker))
	d := size * 0.8
	rl.DrawLineEx(rl.NewVector2(c.X-gap-d, c.Y-gap-d), rl.NewVector2(c.X-gap, c.Y-gap), 2, marker)
	rl.DrawLineEx(rl.NewVector2(c.X+gap, c.Y+gap), rl.NewVector2(c.X+gap+d, c.Y+gap+d), 2, marker)
	rl.DrawLineEx(rl.NewVector2(c.X+gap+d, c.Y-gap-d), rl.NewVector2(c.X+gap, c.Y-gap), 2, marker)
	rl.DrawLineEx(rl.NewVector2(c.X-gap, c.Y+gap), rl.NewVector2(c.X-gap-d, c.Y+gap+d), 2, marker)
}

// Reset забывает последний выстрел.
func (c *CrosshairRL) Reset() {
	c.fired = false
}
