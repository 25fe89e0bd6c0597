package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/culture-catch/constants"
)

// MockTimeProvider is a hand-driven TimeProvider for tests and catch-sim
// Session seconds are counted from the start time, so callers derive second ticks from Advance
type MockTimeProvider struct {
	mu    sync.Mutex
	start time.Time
	now   time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d and returns how many whole-second
// boundaries past the start time the step crossed
func (m *MockTimeProvider) Advance(d time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	before := m.now.Sub(m.start) / constants.SecondTickInterval
	m.now = m.now.Add(d)
	return int(m.now.Sub(m.start)/constants.SecondTickInterval - before)
}
