package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/culture-catch/engine"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbField      = tcell.NewRGBColor(31, 35, 53)    // Play field
	RgbText       = tcell.NewRGBColor(192, 202, 245) // Primary text
	RgbTextDim    = tcell.NewRGBColor(86, 95, 137)   // Hints

	RgbCardBg       = tcell.NewRGBColor(52, 59, 88)
	RgbCardBorder   = tcell.NewRGBColor(122, 162, 247)
	RgbCardDragging = tcell.NewRGBColor(255, 158, 100)
	RgbCardHover    = tcell.NewRGBColor(224, 175, 104)

	RgbZoneIdle    = tcell.NewRGBColor(65, 72, 104)
	RgbZoneHover   = tcell.NewRGBColor(224, 175, 104)
	RgbZoneCorrect = tcell.NewRGBColor(158, 206, 106)
	RgbZoneWrong   = tcell.NewRGBColor(247, 118, 142)

	RgbStatusBar  = tcell.NewRGBColor(36, 40, 59)
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbTimerBg    = tcell.NewRGBColor(125, 207, 255)
	RgbWarningBg  = tcell.NewRGBColor(247, 118, 142)
	RgbScoreBg    = tcell.NewRGBColor(187, 154, 247)
	RgbMutedBg    = tcell.NewRGBColor(86, 95, 137)
	RgbMeterEmpty = tcell.NewRGBColor(0, 0, 0)
)

// ZoneColor returns the zone border color for a zone state
func ZoneColor(z engine.ZoneState) tcell.Color {
	switch z {
	case engine.ZoneHover:
		return RgbZoneHover
	case engine.ZoneCorrect:
		return RgbZoneCorrect
	case engine.ZoneWrong:
		return RgbZoneWrong
	default:
		return RgbZoneIdle
	}
}

// GetMeterColor returns the culture meter color at a position in the fill
// progress is 0.0 to 1.0: red through yellow to green
func GetMeterColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return tcell.NewRGBColor(139, 0, 0)
	}
	if progress > 1.0 {
		progress = 1.0
	}

	if progress < 0.5 { // Red to Yellow
		t := progress / 0.5
		r := int32(139 + (255-139)*t)
		g := int32(215 * t)
		return tcell.NewRGBColor(r, g, 0)
	}
	// Yellow to Green
	t := (progress - 0.5) / 0.5
	r := int32(255 - (255-34)*t)
	g := int32(215 - (215-139)*t)
	b := int32(34 * t)
	return tcell.NewRGBColor(r, g, b)
}
