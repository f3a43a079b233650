package ui

import "image/color"

// UI constants
const (
	FontSizeTitle     float32 = 16 // Window header
	FontSizeTime      float32 = 56 // Time display
	FontSizeAlert     float32 = 72
	FontSizeAlertBody float32 = 32

	LauncherWidth   = 250
	LapListHeight   = 120
	CornerRadius    = 20.0
	BackgroundAlpha = 0xd8
)

var (
	// PanelColor is the translucent backdrop of the tool views.
	PanelColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xb0}
	// AlertColor is the full-screen alert backdrop.
	AlertColor = color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xe6}
)
