package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the floor view and panel
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloor      = tcell.NewRGBColor(70, 74, 92)    // Walkable floor dots
	RgbObstacle   = tcell.NewRGBColor(110, 90, 70)   // Blocked cells inside floor bounds
	RgbMeshEven   = tcell.NewRGBColor(34, 44, 64)    // Overlay tint, even triangles
	RgbMeshOdd    = tcell.NewRGBColor(44, 34, 64)    // Overlay tint, odd triangles
	RgbPath       = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbAgent      = tcell.NewRGBColor(255, 255, 255) // Bright white
	RgbPanelText  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbPanelTitle = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbButtonBg   = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbButtonBusy = tcell.NewRGBColor(255, 192, 203) // Pink while a run is active
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text on light backgrounds

	// Targets are tinted by selection
	RgbTargetSelected   = RGBFloat(0.4, 0.8, 0.2)
	RgbTargetUnselected = RGBFloat(1.0, 0.7, 0.7)

	// RgbMarker is the full-intensity marker color, scaled by its light pulse
	RgbMarker = RGBFloat(1.0, 0.0, 0.0)
)

// RGBFloat converts unit-range channels to a terminal color
func RGBFloat(r, g, b float64) tcell.Color {
	return tcell.NewRGBColor(channel(r), channel(g), channel(b))
}

// channel converts a unit float to 0..255 with rounding
func channel(v float64) int32 {
	if v >= 1.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return int32(v*255.0 + 0.5)
}

// TargetColor returns the tint for a target by selection state
func TargetColor(selected bool) tcell.Color {
	if selected {
		return RgbTargetSelected
	}
	return RgbTargetUnselected
}

// MarkerColor scales the marker red by light intensity, keeping a visible floor
func MarkerColor(intensity float64) tcell.Color {
	if intensity <= 0 {
		return RgbMarker
	}
	return RGBFloat(0.35+0.65*intensity, 0, 0)
}
