package render

import (
	"math"

	"github.com/lixenwraith/culture-catch/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	State engine.RenderState

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Deck metadata shown on the welcome screen
	Region   string
	Fallback bool

	// Best recorded score for the player, when history is available
	BestScore int
	HasBest   bool

	Muted bool
	Debug bool

	// Metrics are preformatted key=value lines for the debug layer
	Metrics []string
}

// CellOf converts a float coordinate to the screen cell containing it
func CellOf(v float64) int {
	return int(math.Floor(v))
}
