package progress

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/culture-catch/core"
	"github.com/lixenwraith/culture-catch/engine"
	"github.com/lixenwraith/culture-catch/events"
	"github.com/lixenwraith/culture-catch/status"
)

// DefaultSaveTimeout bounds one persistence round across all sinks
const DefaultSaveTimeout = 5 * time.Second

// Recorder persists session results off the engine goroutine
// Failures are logged and never retried
type Recorder struct {
	sinks   []Sink
	timeout time.Duration
	log     zerolog.Logger

	mu      sync.Mutex
	pending int
	idle    chan struct{} // Closed while no save is in flight

	saved    *atomic.Int64
	failed   *atomic.Int64
	lastSink *status.AtomicString
}

// NewRecorder creates a recorder over sinks; nil sinks are skipped
func NewRecorder(logger zerolog.Logger, sinks ...Sink) *Recorder {
	r := &Recorder{
		timeout: DefaultSaveTimeout,
		log:     logger.With().Str("component", "progress").Logger(),
		idle:    make(chan struct{}),
	}
	close(r.idle)
	for _, s := range sinks {
		if s != nil {
			r.sinks = append(r.sinks, s)
		}
	}
	return r
}

// WithMetrics counts saves and failures in reg
func (r *Recorder) WithMetrics(reg *status.Registry) *Recorder {
	r.saved = reg.Ints.Get(status.KeyResultsSaved)
	r.failed = reg.Ints.Get(status.KeyResultsFailed)
	r.lastSink = reg.Strings.Get(status.KeyLastSink)
	return r
}

// EventTypes implements events.Handler
func (r *Recorder) EventTypes() []events.EventType {
	return []events.EventType{events.EventSessionEnd}
}

// HandleEvent implements events.Handler
func (r *Recorder) HandleEvent(ev events.GameEvent) {
	p, ok := ev.Payload.(*events.SessionEndPayload)
	if !ok {
		return
	}
	r.Record(p.Result)
}

// Record saves res to every sink on a background goroutine
func (r *Recorder) Record(res engine.Result) {
	if len(r.sinks) == 0 {
		return
	}
	res.CollectedCorrect = append([]int(nil), res.CollectedCorrect...)
	res.CollectedWrong = append([]int(nil), res.CollectedWrong...)

	r.begin()
	core.Go(func() {
		defer r.end()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		for _, s := range r.sinks {
			if err := s.Save(ctx, res); err != nil {
				r.log.Warn().Err(err).Str("sink", s.Name()).Int("score", res.FinalScore).Msg("result not saved")
				if r.failed != nil {
					r.failed.Add(1)
				}
				continue
			}
			if r.saved != nil {
				r.saved.Add(1)
				r.lastSink.Store(s.Name())
			}
			r.log.Info().Str("sink", s.Name()).Int("score", res.FinalScore).Stringer("reason", res.EndReason).Msg("result saved")
		}
	})
}

func (r *Recorder) begin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == 0 {
		r.idle = make(chan struct{})
	}
	r.pending++
}

func (r *Recorder) end() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending--
	if r.pending == 0 {
		close(r.idle)
	}
}

// Wait blocks until pending saves finish or ctx expires
// Saves recorded after Wait starts are not waited for
func (r *Recorder) Wait(ctx context.Context) error {
	r.mu.Lock()
	idle := r.idle
	r.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
