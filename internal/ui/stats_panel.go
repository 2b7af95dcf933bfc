// internal/ui/stats_panel.go
package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// StatsPanelRL - полупрозрачная панель со строками статистики.
type StatsPanelRL struct {
	X, Y       int32
	FontSize   int32
	LineHeight int32
	Padding    int32
}

func NewStatsPanelRL(x, y, fontSize int32) *StatsPanelRL {
	return &StatsPanelRL{
		X:          x,
		Y:          y,
		FontSize:   fontSize,
		LineHeight: fontSize + 4,
		Padding:    8,
	}
}

func (p *StatsPanelRL) Draw(lines []string, background, textColor color.RGBA) {
	width := int32(0)
	for _, line := range lines {
		if w := rl.MeasureText(line, p.FontSize); w > width {
			width = w
		}
	}
	height := int32(len(lines))*p.LineHeight + 2*p.Padding - (p.LineHeight - p.FontSize)

	rl.DrawRectangle(p.X, p.Y, width+2*p.Padding, height, rl.NewColor(background.R, background.G, background.B, background.A))
	col := rl.NewColor(textColor.R, textColor.G, textColor.B, textColor.A)
	for i, line := range lines {
		rl.DrawText(line, p.X+p.Padding, p.Y+p.Padding+int32(i)*p.LineHeight, p.FontSize, col)
	}
}
