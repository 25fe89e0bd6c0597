package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/culture-catch/audio"
	"github.com/lixenwraith/culture-catch/config"
	"github.com/lixenwraith/culture-catch/constants"
	"github.com/lixenwraith/culture-catch/content"
	"github.com/lixenwraith/culture-catch/core"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/events"
	"github.com/lixenwraith/culture-catch/input"
	"github.com/lixenwraith/culture-catch/progress"
	"github.com/lixenwraith/culture-catch/render"
	"github.com/lixenwraith/culture-catch/render/renderers"
	"github.com/lixenwraith/culture-catch/session"
	"github.com/lixenwraith/culture-catch/status"
)

// newScreen opens the terminal; tests substitute a failing factory
var newScreen = tcell.NewScreen

func main() {
	os.Exit(start(os.Args[1:], os.Stderr))
}

// start runs the game and returns the process exit code
// Deferred cleanup runs before main exits
func start(args []string, stderr io.Writer) int {
	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}
	fs := flag.NewFlagSet("culture-catch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug, cfg.Level()); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, log.Logger); err != nil {
		log.Error().Err(err).Msg("exiting")
		fmt.Fprintf(stderr, "culture-catch: %v\n", err)
		return 1
	}
	return 0
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	deck := content.NewLoader(cfg.DeckSource(), logger).Load(context.Background())

	store, sinks, err := progress.OpenSinks(cfg.DBPath, cfg.ProgressURL, logger)
	if err != nil {
		// History is optional, play continues without the local store
		logger.Warn().Err(err).Str("path", cfg.DBPath).Msg("results store unavailable")
		_, sinks, _ = progress.OpenSinks("", cfg.ProgressURL, logger)
	}
	if store != nil {
		defer store.Close()
	}
	metrics := status.NewRegistry()
	recorder := progress.NewRecorder(logger, sinks...).WithMetrics(metrics)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), progress.DefaultSaveTimeout)
		defer cancel()
		if err := recorder.Wait(ctx); err != nil {
			logger.Warn().Err(err).Msg("pending results not saved")
		}
	}()

	var best bestScore
	if store != nil && cfg.Email != "" {
		if score, ok, err := store.Best(context.Background(), cfg.Email); err == nil {
			best = bestScore{value: score, ok: ok}
		}
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbText))

	width, height := screen.Size()
	layout := render.NewLayout(width, height)

	ctrl, err := session.New(session.Options{
		Settings: cfg.Settings,
		Deck:     deck,
		Geometry: layout,
		Logger:   logger,
		Email:    cfg.Email,
	})
	if err != nil {
		return err
	}

	// Audio is optional: a failed device leaves cues silent
	player := audio.NewSpeakerPlayer(audio.LoadAudioConfig())
	if err := player.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable")
	}
	defer player.Cleanup()
	feedback := audio.NewFeedback(player, logger)

	ctrl.Subscribe(feedback)
	ctrl.Subscribe(recorder)
	ctrl.Subscribe(best.handler())
	ctrl.Subscribe(status.NewEventCounter(metrics))

	orchestrator := render.NewRenderOrchestrator(screen)
	debugLayer := renderers.RegisterDefaults(orchestrator)
	if cfg.Debug {
		debugLayer.Toggle()
	}

	var loop *engine.Loop
	frames := metrics.Ints.Get(status.KeyLoopFrames)

	frameCtx := func() render.RenderContext {
		w, h := layout.Size()
		var lines []string
		if debugLayer.IsVisible() {
			frames.Store(int64(loop.Frames()))
			lines = metrics.Lines()
		}
		return render.RenderContext{
			State:        ctrl.RenderState(),
			ScreenWidth:  w,
			ScreenHeight: h,
			Region:       deck.Region,
			Fallback:     deck.Fallback,
			BestScore:    best.value,
			HasBest:      best.ok,
			Muted:        feedback.Muted(),
			Debug:        debugLayer.IsVisible(),
			Metrics:      lines,
		}
	}

	loop = engine.NewLoop(constants.FrameUpdateInterval, constants.SecondTickInterval, constants.RenderInterval,
		engine.LoopHandlers{
			OnFrame:  ctrl.Tick,
			OnSecond: ctrl.SecondTick,
			OnRender: func() { orchestrator.RenderFrame(frameCtx()) },
		})
	loop.Start()
	defer loop.Stop()

	logger.Info().
		Int("cards", len(deck.Cards)).
		Bool("fallback", deck.Fallback).
		Str("region", deck.Region).
		Msg("session ready")

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	mouse := input.NewMouseAdapter()
	keys := input.DefaultKeyTable()

	for ev := range eventChan {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch keys.Resolve(ev) {
			case input.IntentQuit:
				return nil
			case input.IntentStart:
				loop.Post(func() {
					if !ctrl.Start() {
						ctrl.Replay()
					}
				})
			case input.IntentReplay:
				loop.Post(func() { ctrl.Replay() })
			case input.IntentToggleMute:
				muted := feedback.ToggleMute()
				logger.Debug().Bool("muted", muted).Msg("mute toggled")
			case input.IntentToggleDebug:
				debugLayer.Toggle()
			}

		case *tcell.EventMouse:
			if pe, ok := mouse.Translate(ev); ok {
				loop.Post(func() { ctrl.HandlePointer(pe) })
			}

		case *tcell.EventResize:
			w, h := ev.Size()
			loop.Post(func() {
				layout.Resize(w, h)
				orchestrator.Resize(w, h)
			})
		}
	}
	return nil
}

// bestScore tracks the player's best result; read and written on the loop goroutine only
type bestScore struct {
	value int
	ok    bool
}

func (b *bestScore) handler() events.Handler {
	return events.HandlerFunc{
		Types: []events.EventType{events.EventSessionEnd},
		Fn: func(ev events.GameEvent) {
			p, ok := ev.Payload.(*events.SessionEndPayload)
			if !ok {
				return
			}
			if !b.ok || p.Result.FinalScore > b.value {
				b.value, b.ok = p.Result.FinalScore, true
			}
		},
	}
}
