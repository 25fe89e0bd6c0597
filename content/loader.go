package content

import (
	"bytes"
	"context"
	_ "embed"
	"time"

	"github.com/rs/zerolog"
)

//go:embed fallback.json
var fallbackJSON []byte

// DefaultLoadTimeout bounds one deck fetch
const DefaultLoadTimeout = 5 * time.Second

// Fallback returns the built-in deck used when loading fails
func Fallback() Deck {
	d, err := DecodeDeck(bytes.NewReader(fallbackJSON))
	if err != nil {
		panic("content: embedded fallback deck: " + err.Error())
	}
	d.Fallback = true
	return d
}

// Loader fetches a deck once and never fails: any error yields the fallback deck
type Loader struct {
	source  Source
	log     zerolog.Logger
	timeout time.Duration
}

// NewLoader creates a loader; a nil source always produces the fallback deck
func NewLoader(src Source, logger zerolog.Logger) *Loader {
	return &Loader{
		source:  src,
		log:     logger.With().Str("component", "content").Logger(),
		timeout: DefaultLoadTimeout,
	}
}

// WithTimeout overrides the fetch deadline
func (l *Loader) WithTimeout(d time.Duration) *Loader {
	l.timeout = d
	return l
}

// Load returns a validated deck
func (l *Loader) Load(ctx context.Context) Deck {
	if l.source == nil {
		l.log.Info().Msg("no content source configured, using fallback deck")
		return Fallback()
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	start := time.Now()
	d, err := l.source.FetchDeck(ctx)
	if err == nil {
		err = d.Validate()
	}
	if err != nil {
		l.log.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("deck load failed, using fallback deck")
		return Fallback()
	}

	d.normalize()
	l.log.Info().
		Int("cards", len(d.Cards)).
		Int("correct", d.CorrectCount()).
		Str("region", d.Region).
		Dur("elapsed", time.Since(start)).
		Msg("deck loaded")
	return d
}
