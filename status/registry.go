package status

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/culture-catch/events"
)

// Metric keys shared by writers and the debug overlay
const (
	KeyLoopFrames    = "loop.frames"
	KeyResultsSaved  = "results.saved"
	KeyResultsFailed = "results.failed"
	KeyLastSink      = "results.last_sink"
	eventKeyPrefix   = "ev."
)

// Registry holds process counters written from the loop and persistence goroutines
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Lines formats every metric as key=value, integers first, each group in key order
func (r *Registry) Lines() []string {
	out := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return out
}

// EventCounter counts dispatched feedback events per type
type EventCounter struct {
	counts map[events.EventType]*atomic.Int64
}

// NewEventCounter registers one counter per event type in reg
func NewEventCounter(reg *Registry) *EventCounter {
	c := &EventCounter{counts: make(map[events.EventType]*atomic.Int64)}
	for _, t := range events.AllEventTypes() {
		c.counts[t] = reg.Ints.Get(eventKeyPrefix + t.String())
	}
	return c
}

// EventTypes implements events.Handler
func (c *EventCounter) EventTypes() []events.EventType {
	return events.AllEventTypes()
}

// HandleEvent implements events.Handler
func (c *EventCounter) HandleEvent(ev events.GameEvent) {
	if n, ok := c.counts[ev.Type]; ok {
		n.Add(1)
	}
}
