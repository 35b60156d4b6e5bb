package config

import "image/color"

// C is the active configuration. It starts at the defaults and is replaced by
// main once config.txt has been loaded.
var C *Config

// PlayerConfig contains player movement tuning.
type PlayerConfig struct {
	MoveSeconds float64 // seconds to glide between adjacent cells
	Radius      float64 // collision radius in cell units
}

// GhostConfig contains ghost behavior tuning.
type GhostConfig struct {
	Radius  float64 // collision radius in cell units
	BobRate float64 // hover bob frequency in radians per second
	BobAmp  float64 // hover bob amplitude in cell units
	Color   color.RGBA
}

// FoodConfig contains food pellet tuning.
type FoodConfig struct {
	Radius  float64 // pickup radius in cell units
	BobRate float64
	BobAmp  float64
}

// RenderConfig contains board-view tuning.
type RenderConfig struct {
	CameraSmoothing   float64 // camera follow easing rate per second
	SliceDim          float64 // brightness falloff on neighbouring w boards
	PortalFlashFrames int     // updates of tint after a w-portal crossing
	FloorColor        color.RGBA
	PortalFlashColor  color.RGBA
}

// HUDConfig contains HUD layout values. Sizes are in pixels before ui-scale
// is applied.
type HUDConfig struct {
	Margin        float64
	ScoreFontSize float64
	ClockFontSize float64
	ControlSize   float64 // side length of one control cell
	ControlGap    float64
	ActiveColor   color.RGBA
	DimColor      color.RGBA
	TextColor     color.RGBA
	OverlayColor  color.RGBA
	WinColor      color.RGBA
	LoseColor     color.RGBA
}

// Rainbow is the wall palette keyed off the w axis: each
// parallel corridor of the maze gets its own hue.
var Rainbow = [7]color.RGBA{
	{R: 204, G: 51, B: 51, A: 255},
	{R: 204, G: 102, B: 51, A: 255},
	{R: 102, G: 204, B: 51, A: 255},
	{R: 51, G: 204, B: 51, A: 255},
	{R: 51, G: 102, B: 204, A: 255},
	{R: 51, G: 51, B: 204, A: 255},
	{R: 102, G: 51, B: 204, A: 255},
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Global tuning instances
var Player PlayerConfig
var Ghost GhostConfig
var Food FoodConfig
var Render RenderConfig
var HUD HUDConfig

func init() {
	C = Default()

	Player = PlayerConfig{
		MoveSeconds: 0.5,
		Radius:      0.3,
	}

	Ghost = GhostConfig{
		Radius:  0.35,
		BobRate: 3.0,
		BobAmp:  0.25,
		Color:   White,
	}

	Food = FoodConfig{
		Radius:  0.25,
		BobRate: 2.0,
		BobAmp:  0.2,
	}

	Render = RenderConfig{
		CameraSmoothing:   10.0,
		SliceDim:          0.55,
		PortalFlashFrames: 12,
		FloorColor:        color.RGBA{R: 60, G: 50, B: 45, A: 255},
		PortalFlashColor:  color.RGBA{R: 160, G: 120, B: 255, A: 70},
	}

	HUD = HUDConfig{
		Margin:        12,
		ScoreFontSize: 24,
		ClockFontSize: 20,
		ControlSize:   26,
		ControlGap:    4,
		ActiveColor:   color.RGBA{R: 255, G: 255, B: 255, A: 230},
		DimColor:      color.RGBA{R: 255, G: 255, B: 255, A: 60},
		TextColor:     White,
		OverlayColor:  BlackOverlay,
		WinColor:      BrightGreen,
		LoseColor:     LightRed,
	}
}
