package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/culture-catch/config"
	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/content"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/input"
	"github.com/lixenwraith/culture-catch/progress"
	"github.com/lixenwraith/culture-catch/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	cfg.RegisterFlags(flag.CommandLine)

	var (
		tracePath = flag.String("trace", "", "JSON-lines touch trace to replay, empty runs the autoplay bot")
		width     = flag.Int("width", 96, "play field width in cells")
		height    = flag.Int("height", 36, "play field height in cells including the zone")
		zone      = flag.Int("zone", 6, "drop zone height in cells")
		accuracy  = flag.Float64("accuracy", 0.9, "autoplay probability of judging a card correctly")
		think     = flag.Int("think", 20, "autoplay ticks between gesture steps")
		record    = flag.Bool("record", false, "persist the result to the configured sinks")
	)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	logger := log.Logger

	deck := content.NewLoader(cfg.DeckSource(), logger).Load(context.Background())

	clock := engine.NewMockTimeProvider(time.Now().UTC())
	ctrl, err := session.New(session.Options{
		Settings: cfg.Settings,
		Deck:     deck,
		Geometry: engine.NewStaticGeometry(*width, *height, *zone),
		Time:     clock,
		Logger:   logger,
		Email:    cfg.Email,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("session setup failed")
	}

	var recorder *progress.Recorder
	if *record {
		store, sinks, err := progress.OpenSinks(cfg.DBPath, cfg.ProgressURL, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("open sinks")
		}
		if store != nil {
			defer store.Close()
		}
		recorder = progress.NewRecorder(logger, sinks...)
		ctrl.Subscribe(recorder)
	}

	sim := &simulator{
		ctrl:   ctrl,
		clock:  clock,
		touch:  input.NewTouchAdapter(),
		maxTks: maxPlayTicks(cfg.Settings.DurationSeconds),
	}
	if *tracePath != "" {
		f, err := os.Open(*tracePath)
		if err != nil {
			logger.Fatal().Err(err).Msg("open trace")
		}
		sim.trace, err = readTrace(f)
		f.Close()
		if err != nil {
			logger.Fatal().Err(err).Msg("parse trace")
		}
	} else {
		sim.bot = newBot(ctrl.Deck(), cfg.Settings.Seed, *accuracy, *think)
	}

	res, err := sim.run()
	if err != nil {
		logger.Fatal().Err(err).Msg("simulation failed")
	}

	if recorder != nil {
		ctx, cancel := context.WithTimeout(context.Background(), progress.DefaultSaveTimeout)
		if err := recorder.Wait(ctx); err != nil {
			logger.Warn().Err(err).Msg("pending results not saved")
		}
		cancel()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		logger.Fatal().Err(err).Msg("encode result")
	}
}

// maxPlayTicks bounds a run: the clock expires within duration seconds plus one of slack
func maxPlayTicks(duration int) uint64 {
	perSecond := uint64(constants.SecondTickInterval/constants.FrameUpdateInterval) + 1
	return uint64(duration+1) * perSecond
}
