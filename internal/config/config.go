// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 1.0 / 30 // шаг симуляции не больше 1/30 с

	// Floor sits slightly above the bottom edge so splashes stay visible.
	FloorInset = 2.0

	// Streaks wrap once they drift this far past a side edge.
	WrapMargin = 20.0

	StreakBaseSpeed   = 400.0
	StreakSpeedSpread = 380.0
	StreakSpawnBand   = 0.6 // доля высоты экрана над верхним краем

	SplashBaseSpeed   = 180.0
	SplashSpeedSpread = 220.0
	SplashLifeMin     = 0.18
	SplashLifeSpread  = 0.32
	MinSplashCount    = 2

	RippleGrowth     = 60.0 // px/s
	RippleLifeFloor  = 0.03
	RippleStartAlpha = 0.25

	DefaultDropletCap = 1200
	DefaultRippleCap  = 200

	IndicatorOffsetX = 30
	IndicatorRadius  = 8.0
	HUDLineHeight    = 16
)

var (
	DefaultStreakColor = color.RGBA{0x3B, 0xA7, 0xFF, 0xFF}
	HighlightColor     = color.RGBA{255, 255, 255, 230}
	BackgroundColor    = color.RGBA{12, 14, 22, 255}
	CardColor          = color.RGBA{32, 38, 56, 235}
	CardStrokeColor    = color.RGBA{70, 100, 120, 220}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	RunningStateColor  = color.RGBA{50, 205, 50, 255}
	HiddenStateColor   = color.RGBA{220, 60, 60, 220}
)
