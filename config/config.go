package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/culture-catch/content"
	"github.com/lixenwraith/culture-catch/engine"
)

// ErrInvalidValue is wrapped when an environment variable cannot be parsed
var ErrInvalidValue = errors.New("invalid config value")

// Environment variable names
const (
	EnvDeckURL     = "CATCH_DECK_URL"
	EnvDeckFile    = "CATCH_DECK_FILE"
	EnvDeckDir     = "CATCH_DECK_DIR"
	EnvEmail       = "CATCH_EMAIL"
	EnvDBPath      = "CATCH_DB_PATH"
	EnvProgressURL = "CATCH_PROGRESS_URL"
	EnvLogLevel    = "LOG_LEVEL"
	EnvDebug       = "CATCH_DEBUG"
	EnvAddr        = "CATCH_ADDR"

	EnvSlots        = "CATCH_SLOTS"
	EnvCorrectDelta = "CATCH_CORRECT_DELTA"
	EnvWrongDelta   = "CATCH_WRONG_DELTA"
	EnvScoreMin     = "CATCH_SCORE_MIN"
	EnvScoreMax     = "CATCH_SCORE_MAX"
	EnvDuration     = "CATCH_DURATION"
	EnvCountdown    = "CATCH_COUNTDOWN"
	EnvSeed         = "CATCH_SEED"
	EnvShuffle      = "CATCH_SHUFFLE"
)

// Defaults not covered by engine.DefaultSettings
const (
	DefaultDBPath   = "data/culture-catch.db"
	DefaultLogLevel = "info"
	DefaultAddr     = ":5180"
	DefaultDeckDir  = "decks"
)

// Config is the resolved runtime configuration shared by the binaries
type Config struct {
	// Deck source: URL wins over file; neither means the embedded fallback deck
	DeckURL  string
	DeckFile string
	DeckDir  string

	Email       string
	DBPath      string
	ProgressURL string
	Addr        string

	LogLevel string
	Debug    bool

	Settings engine.Settings
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		DBPath:   DefaultDBPath,
		DeckDir:  DefaultDeckDir,
		Addr:     DefaultAddr,
		LogLevel: DefaultLogLevel,
		Settings: engine.DefaultSettings(),
	}
}

// Load reads .env when present, then the process environment
// Settings are validated; flags registered afterwards may still override and must be re-validated
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a configuration from a lookup function, empty values keep defaults
func FromEnv(getenv func(string) string) (*Config, error) {
	c := Default()
	p := parser{getenv: getenv}

	p.str(EnvDeckURL, &c.DeckURL)
	p.str(EnvDeckFile, &c.DeckFile)
	p.str(EnvDeckDir, &c.DeckDir)
	p.str(EnvEmail, &c.Email)
	p.str(EnvDBPath, &c.DBPath)
	p.str(EnvProgressURL, &c.ProgressURL)
	p.str(EnvAddr, &c.Addr)
	p.str(EnvLogLevel, &c.LogLevel)
	p.boolean(EnvDebug, &c.Debug)

	s := &c.Settings
	p.integer(EnvSlots, &s.Slots)
	p.integer(EnvCorrectDelta, &s.CorrectDelta)
	p.integer(EnvWrongDelta, &s.WrongDelta)
	p.integer(EnvScoreMin, &s.ScoreMin)
	p.integer(EnvScoreMax, &s.ScoreMax)
	p.integer(EnvDuration, &s.DurationSeconds)
	p.integer(EnvCountdown, &s.CountdownSeconds)
	p.boolean(EnvShuffle, &s.Shuffle)
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			p.fail(EnvSeed, v, err)
		}
		s.Seed = seed
	}

	if p.err != nil {
		return nil, p.err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// RegisterFlags binds the shared flags to c; current values become the flag defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.DeckURL, "deck-url", c.DeckURL, "content service base URL")
	fs.StringVar(&c.DeckFile, "deck-file", c.DeckFile, "deck JSON file, used when no URL is set")
	fs.StringVar(&c.Email, "email", c.Email, "player email for deck lookup and progress")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "SQLite results database, empty disables")
	fs.StringVar(&c.ProgressURL, "progress-url", c.ProgressURL, "progress service base URL, empty disables")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging and overlay")

	s := &c.Settings
	fs.IntVar(&s.Slots, "slots", s.Slots, "concurrently floating cards")
	fs.IntVar(&s.DurationSeconds, "duration", s.DurationSeconds, "session length in seconds")
	fs.IntVar(&s.CountdownSeconds, "countdown", s.CountdownSeconds, "countdown before play in seconds")
	fs.IntVar(&s.ScoreMin, "score-min", s.ScoreMin, "lowest score")
	fs.IntVar(&s.ScoreMax, "score-max", s.ScoreMax, "highest score")
	fs.Uint64Var(&s.Seed, "seed", s.Seed, "presentation order seed")
	fs.BoolVar(&s.Shuffle, "shuffle", s.Shuffle, "shuffle the presentation order")
}

// Validate checks the session settings and the log level
func (c *Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidValue, c.LogLevel)
	}
	return nil
}

// DeckSource returns the configured deck source, nil selects the embedded fallback
func (c *Config) DeckSource() content.Source {
	switch {
	case c.DeckURL != "":
		return content.NewHTTPSource(c.DeckURL, c.Email, content.DefaultLoadTimeout)
	case c.DeckFile != "":
		return content.FileSource{Path: c.DeckFile}
	}
	return nil
}

// Level returns the configured zerolog level, info when unparsable
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// parser accumulates the first parse error
type parser struct {
	getenv func(string) string
	err    error
}

func (p *parser) fail(key, raw string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, raw, err)
	}
}

func (p *parser) str(key string, dst *string) {
	if v := p.getenv(key); v != "" {
		*dst = v
	}
}

func (p *parser) integer(key string, dst *int) {
	v := p.getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return
	}
	*dst = n
}

func (p *parser) boolean(key string, dst *bool) {
	v := p.getenv(key)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
		return
	}
	*dst = b
}
