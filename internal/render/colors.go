package render

import (
	"image/color"

	"github.com/starlight-duel/starlight/internal/player"
)

// CGA 16-color palette indices. The HUD never needs more.
const (
	ColorBlack        = 0
	ColorBlue         = 1
	ColorGreen        = 2
	ColorCyan         = 3
	ColorRed          = 4
	ColorMagenta      = 5
	ColorBrown        = 6
	ColorLightGray    = 7
	ColorDarkGray     = 8
	ColorLightBlue    = 9
	ColorLightGreen   = 10
	ColorLightCyan    = 11
	ColorLightRed     = 12
	ColorLightMagenta = 13
	ColorYellow       = 14
	ColorWhite        = 15
)

// Palette contains the classic CGA 16-color palette.
var Palette = [16]color.RGBA{
	{0, 0, 0, 255},       // 0: Black
	{0, 0, 170, 255},     // 1: Blue
	{0, 170, 0, 255},     // 2: Green
	{0, 170, 170, 255},   // 3: Cyan
	{170, 0, 0, 255},     // 4: Red
	{170, 0, 170, 255},   // 5: Magenta
	{170, 85, 0, 255},    // 6: Brown
	{170, 170, 170, 255}, // 7: Light Gray
	{85, 85, 85, 255},    // 8: Dark Gray
	{85, 85, 255, 255},   // 9: Light Blue
	{85, 255, 85, 255},   // 10: Light Green
	{85, 255, 255, 255},  // 11: Light Cyan
	{255, 85, 85, 255},   // 12: Light Red
	{255, 85, 255, 255},  // 13: Light Magenta
	{255, 255, 85, 255},  // 14: Yellow
	{255, 255, 255, 255}, // 15: White
}

// SlotColor is the highlight colour for a player: blue for P1 and red
// for P2, matching the menu cursors.
func SlotColor(s player.Slot) uint8 {
	switch s {
	case player.P1:
		return ColorLightBlue
	case player.P2:
		return ColorLightRed
	default:
		return ColorDarkGray
	}
}

// LevelColor grades a fill fraction the way the bars do: red at 15% and
// below, yellow at 30%, otherwise ok.
func LevelColor(frac float64, ok uint8) uint8 {
	switch {
	case frac <= 0.15:
		return ColorLightRed
	case frac <= 0.30:
		return ColorYellow
	default:
		return ok
	}
}
