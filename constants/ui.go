package constants

// UI Layout Constants (in cells)
const (
	// HeaderRows is the status bar plus the culture meter above the play field
	HeaderRows = 2

	// MinZoneHeight and ZoneHeightDivisor size the drop zone band: max(min, height/divisor)
	MinZoneHeight     = 5
	ZoneHeightDivisor = 5

	// MinPlayWidth and MinPlayHeight are the smallest field that can host a card with room to float
	MinPlayWidth  = CardWidth * 2
	MinPlayHeight = CardHeight * 2

	// MeterWidth caps the culture meter bar
	MeterWidth = 40
)

// Status bar labels
const (
	StatusMuted = " MUTED "
	StatusDebug = " DEBUG "
)

// Overlay text
const (
	WelcomeTitle   = "CULTURE CATCH"
	WelcomeHint    = "Drag the dishes that belong to %s into the basket"
	WelcomePrompt  = "Press ENTER or SPACE to start, Q to quit"
	CountdownGo    = "GO!"
	EndedTimeout   = "TIME'S UP"
	EndedCompleted = "ALL COLLECTED!"
	EndedPrompt    = "Press R to play again, Q to quit"
	TooSmallPrompt = "Terminal too small"
)
