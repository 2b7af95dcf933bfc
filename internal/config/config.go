package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	DamageFlashDuration = 0.15 // Сколько секунд мишень горит цветом урона
	DefaultTargetHealth = 3

	HitMarkerDuration = 0.2
	CrosshairSize     = 8.0
	CrosshairGap      = 3.0

	MoveSpeed = 4.0 // Метров в секунду

	TextCharWidth = 7
	TextOffsetY   = 4

	// Overview - вид сверху
	OverviewScale   = 14.0 // Пикселей на метр
	OverviewTurnRad = 2.0  // Радиан в секунду при повороте A/D
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GroundColor     = color.RGBA{70, 100, 120, 255}
	GridColor       = color.RGBA{90, 120, 140, 255}
	LaserColor      = color.RGBA{255, 40, 40, 255}
	FlashColor      = color.RGBA{255, 255, 255, 255}
	CrosshairColor  = color.RGBA{240, 240, 240, 220}
	HitMarkerColor  = color.RGBA{255, 80, 80, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	PanelColor      = color.RGBA{0, 0, 0, 140}
	CameraColor     = color.RGBA{50, 205, 50, 255}
	StrokeWidth     = 2.0
)
