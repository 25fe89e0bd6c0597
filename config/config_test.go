package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/content"
	"github.com/lixenwraith/culture-catch/engine"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	c, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.Settings != engine.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", c.Settings)
	}
	if c.DBPath != DefaultDBPath || c.Addr != DefaultAddr || c.DeckDir != DefaultDeckDir {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.Level() != zerolog.InfoLevel {
		t.Errorf("level = %v, want info", c.Level())
	}
}

func TestFromEnvOverrides(t *testing.T) {
	c, err := FromEnv(envMap(map[string]string{
		EnvDeckURL:   "http://content.local",
		EnvEmail:     "ada@example.com",
		EnvDebug:     "true",
		EnvLogLevel:  "DEBUG",
		EnvSlots:     "3",
		EnvScoreMax:  "10",
		EnvDuration:  "30",
		EnvCountdown: "0",
		EnvSeed:      "42",
		EnvShuffle:   "false",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.DeckURL != "http://content.local" || c.Email != "ada@example.com" || !c.Debug {
		t.Errorf("strings not applied: %+v", c)
	}
	s := c.Settings
	if s.Slots != 3 || s.ScoreMax != 10 || s.DurationSeconds != 30 || s.CountdownSeconds != 0 {
		t.Errorf("settings not applied: %+v", s)
	}
	if s.Seed != 42 || s.Shuffle {
		t.Errorf("seed/shuffle = %d/%v", s.Seed, s.Shuffle)
	}
	if s.ScoreMin != constants.DefaultScoreMin {
		t.Errorf("score min changed to %d", s.ScoreMin)
	}
	if c.Level() != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", c.Level())
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want error
	}{
		{"bad int", map[string]string{EnvSlots: "five"}, ErrInvalidValue},
		{"bad bool", map[string]string{EnvShuffle: "sometimes"}, ErrInvalidValue},
		{"bad seed", map[string]string{EnvSeed: "-1"}, ErrInvalidValue},
		{"bad level", map[string]string{EnvLogLevel: "loud"}, ErrInvalidValue},
		{"zero slots", map[string]string{EnvSlots: "0"}, engine.ErrInvalidSettings},
		{"inverted bounds", map[string]string{EnvScoreMin: "5", EnvScoreMax: "1"}, engine.ErrInvalidSettings},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envMap(tt.env))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	c, err := FromEnv(envMap(map[string]string{EnvSlots: "4", EnvEmail: "env@example.com"}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.RegisterFlags(fs)
	if err := fs.Parse([]string{"-duration", "45", "-email", "flag@example.com"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if c.Settings.Slots != 4 {
		t.Errorf("slots = %d, env value should survive as flag default", c.Settings.Slots)
	}
	if c.Settings.DurationSeconds != 45 || c.Email != "flag@example.com" {
		t.Errorf("flags not applied: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvDuration+"=12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	// godotenv never overrides existing variables; t.Setenv restores the prior state
	t.Setenv(EnvDuration, "")
	os.Unsetenv(EnvDuration)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Settings.DurationSeconds != 12 {
		t.Errorf("duration = %d, want 12 from .env", c.Settings.DurationSeconds)
	}
}

func TestDeckSource(t *testing.T) {
	c := Default()
	if c.DeckSource() != nil {
		t.Error("no URL or file should select the fallback")
	}

	c.DeckFile = "deck.json"
	if _, ok := c.DeckSource().(content.FileSource); !ok {
		t.Errorf("file source = %T", c.DeckSource())
	}

	c.DeckURL = "http://content.local/"
	c.Email = "ada@example.com"
	src, ok := c.DeckSource().(*content.HTTPSource)
	if !ok {
		t.Fatalf("url source = %T", c.DeckSource())
	}
	if src.BaseURL != "http://content.local" || src.Email != "ada@example.com" {
		t.Errorf("http source = %+v", src)
	}
}
