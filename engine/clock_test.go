package engine

import "testing"

func TestSessionClockTimeoutOnce(t *testing.T) {
	c := NewSessionClock(3)

	if c.Tick() {
		t.Fatal("stopped clock must not tick")
	}
	if c.Remaining() != 3 {
		t.Fatalf("Remaining = %d, want 3", c.Remaining())
	}

	c.Start()
	fired := 0
	for i := 0; i < 10; i++ {
		if c.Tick() {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("timeout fired %d times, want 1", fired)
	}
	if c.Remaining() != 0 || !c.TimedOut() || c.Running() {
		t.Errorf("after timeout: remaining=%d timedOut=%v running=%v", c.Remaining(), c.TimedOut(), c.Running())
	}

	c.Resume()
	if c.Running() {
		t.Error("clock must not restart after timeout")
	}
}

func TestSessionClockPauseKeepsRemaining(t *testing.T) {
	c := NewSessionClock(10)
	c.Start()
	c.Tick()
	c.Tick()
	c.Pause()

	for i := 0; i < 5; i++ {
		c.Tick()
	}
	if c.Remaining() != 8 {
		t.Fatalf("Remaining after pause = %d, want 8", c.Remaining())
	}

	c.Resume()
	c.Tick()
	if c.Remaining() != 7 {
		t.Errorf("Remaining after resume = %d, want 7", c.Remaining())
	}
}

func TestSessionClockWarning(t *testing.T) {
	c := NewSessionClock(7)
	c.Start()

	var warned []int
	for !c.TimedOut() {
		c.Tick()
		if c.Warning() {
			warned = append(warned, c.Remaining())
		}
	}
	want := []int{5, 4, 3, 2, 1}
	if len(warned) != len(want) {
		t.Fatalf("warning seconds = %v, want %v", warned, want)
	}
	for i := range want {
		if warned[i] != want[i] {
			t.Errorf("warning[%d] = %d, want %d", i, warned[i], want[i])
		}
	}
}
