package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/culture-catch/constants"
)

// ErrInvalidSettings is wrapped by every Settings validation failure
var ErrInvalidSettings = errors.New("invalid settings")

// Settings configures one session; zero values are not usable, start from DefaultSettings
type Settings struct {
	Slots            int
	CorrectDelta     int
	WrongDelta       int
	ScoreMin         int
	ScoreMax         int
	DurationSeconds  int
	CountdownSeconds int

	// Shuffle enables a seeded presentation order; false keeps deck order
	Shuffle bool
	Seed    uint64
}

// DefaultSettings returns the stock level configuration
func DefaultSettings() Settings {
	return Settings{
		Slots:            constants.DefaultSlots,
		CorrectDelta:     constants.DefaultCorrectDelta,
		WrongDelta:       constants.DefaultWrongDelta,
		ScoreMin:         constants.DefaultScoreMin,
		ScoreMax:         constants.DefaultScoreMax,
		DurationSeconds:  constants.DefaultDurationSeconds,
		CountdownSeconds: constants.DefaultCountdownSeconds,
		Shuffle:          true,
	}
}

// Validate checks internal consistency
func (s Settings) Validate() error {
	switch {
	case s.Slots <= 0:
		return fmt.Errorf("%w: slots must be positive, got %d", ErrInvalidSettings, s.Slots)
	case s.ScoreMin > s.ScoreMax:
		return fmt.Errorf("%w: score min %d exceeds max %d", ErrInvalidSettings, s.ScoreMin, s.ScoreMax)
	case s.ScoreMin > 0 || s.ScoreMax < 0:
		return fmt.Errorf("%w: score range [%d,%d] must contain 0", ErrInvalidSettings, s.ScoreMin, s.ScoreMax)
	case s.DurationSeconds <= 0:
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidSettings, s.DurationSeconds)
	case s.CountdownSeconds < 0:
		return fmt.Errorf("%w: countdown must not be negative, got %d", ErrInvalidSettings, s.CountdownSeconds)
	case s.CorrectDelta < 0:
		return fmt.Errorf("%w: correct delta must not be negative, got %d", ErrInvalidSettings, s.CorrectDelta)
	case s.WrongDelta > 0:
		return fmt.Errorf("%w: wrong delta must not be positive, got %d", ErrInvalidSettings, s.WrongDelta)
	}
	return nil
}
