// pkg/render/color.go
package render

import (
	"image/color"
	"math"

	"go-raycast-shooter/internal/utils"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LerpColor смешивает a и b; t зажимается в 0..1.
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(utils.Lerp(float64(x), float64(y), t)))
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// PulseScale - масштаб элемента, который вспыхивает и за доли секунды
// возвращается к 1. elapsed - секунды с момента вспышки.
func PulseScale(elapsed float64) float64 {
	if elapsed < 0 {
		return 1
	}
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}
