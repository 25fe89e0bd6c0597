package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
// Enter is context dependent: the caller resolves IntentStart to replay once the session has ended
type KeyTable struct {
	SpecialKeys map[tcell.Key]IntentType
	Runes       map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyEnter:  IntentStart,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyF1:     IntentToggleDebug,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			' ': IntentStart,
			'r': IntentReplay,
			'm': IntentToggleMute,
		},
	}
}

// Resolve returns the intent bound to a key event
func (kt *KeyTable) Resolve(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
