package engine

// Stage is the session stage
type Stage uint8

const (
	StageWelcome Stage = iota
	StageCountdown
	StagePlaying
	StageEnded
)

var stageNames = [...]string{"welcome", "countdown", "playing", "ended"}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// EndReason records which end condition fired
type EndReason uint8

const (
	EndNone EndReason = iota
	EndTimeout
	EndCompleted
)

func (r EndReason) String() string {
	switch r {
	case EndTimeout:
		return "timeout"
	case EndCompleted:
		return "completed"
	default:
		return "none"
	}
}

// MarshalText renders the reason name in JSON payloads
func (r EndReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a reason name; unknown names map to EndNone
func (r *EndReason) UnmarshalText(b []byte) error {
	*r = ParseEndReason(string(b))
	return nil
}

// ParseEndReason resolves a reason name
func ParseEndReason(name string) EndReason {
	switch name {
	case "timeout":
		return EndTimeout
	case "completed":
		return EndCompleted
	default:
		return EndNone
	}
}

// SessionState is the stage machine's observable data
type SessionState struct {
	Stage         Stage
	Countdown     int // Remaining countdown steps, 0 = Go
	TimeRemaining int
	EndReason     EndReason
}

// SetEndReason records r if no reason was recorded yet
func (s *SessionState) SetEndReason(r EndReason) bool {
	if s.EndReason != EndNone || r == EndNone {
		return false
	}
	s.EndReason = r
	return true
}
