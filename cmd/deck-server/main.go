package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/culture-catch/config"
	"github.com/lixenwraith/culture-catch/content"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	addr := flag.String("addr", cfg.Addr, "listen address")
	dir := flag.String("dir", cfg.DeckDir, "deck directory")
	seed := flag.Bool("seed", true, "write the built-in deck as default.json when missing")
	level := flag.String("log-level", cfg.LogLevel, "log level")
	flag.Parse()

	cfg.LogLevel = *level
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if *seed {
		if err := seedDefault(*dir); err != nil {
			log.Fatal().Err(err).Msg("failed to seed default deck")
		}
	}

	srv := content.NewServer(*dir, log.Logger)
	if err := srv.Start(*addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// seedDefault writes the embedded deck to dir/default.json unless it already exists
func seedDefault(dir string) error {
	path := filepath.Join(dir, content.DefaultDeckFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create deck dir: %w", err)
	}

	data, err := json.MarshalIndent(content.Fallback(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode default deck: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write default deck: %w", err)
	}
	log.Info().Str("path", path).Msg("seeded default deck")
	return nil
}
