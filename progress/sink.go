package progress

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/culture-catch/engine"
)

// Sink persists one session result
type Sink interface {
	Name() string
	Save(ctx context.Context, r engine.Result) error
}

// OpenSinks builds the configured sinks; an empty path or URL disables that sink
// The returned store is nil when SQLite is disabled and must be closed by the caller otherwise
func OpenSinks(dbPath, progressURL string, logger zerolog.Logger) (*SQLiteStore, []Sink, error) {
	var (
		store *SQLiteStore
		sinks []Sink
	)
	if dbPath != "" {
		s, err := OpenSQLite(dbPath, logger)
		if err != nil {
			return nil, nil, err
		}
		store = s
		sinks = append(sinks, s)
	}
	if progressURL != "" {
		sinks = append(sinks, NewHTTPReporter(progressURL, DefaultSaveTimeout))
	}
	return store, sinks, nil
}
