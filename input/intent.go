package input

// IntentType discriminates semantic keyboard actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit        // Ctrl+Q, Ctrl+C, q
	IntentStart       // Enter, Space on the welcome screen
	IntentReplay      // r, Enter on the result screen
	IntentToggleMute  // m, Ctrl+S
	IntentToggleDebug // F1
)

var intentNames = map[IntentType]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentStart:       "start",
	IntentReplay:      "replay",
	IntentToggleMute:  "toggle-mute",
	IntentToggleDebug: "toggle-debug",
}

func (i IntentType) String() string {
	if n, ok := intentNames[i]; ok {
		return n
	}
	return "unknown"
}
