package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/culture-catch/core"
)

// LoopHandlers are the callbacks the loop goroutine invokes; nil entries are skipped
type LoopHandlers struct {
	OnFrame  func() // Animation tick
	OnSecond func() // Countdown and session clock tick
	OnRender func()
}

// Loop is the single goroutine that owns all session mutation
// Frame, second and render schedules are independent; input is delivered through Post
type Loop struct {
	handlers LoopHandlers

	frameInterval  time.Duration
	secondInterval time.Duration
	renderInterval time.Duration

	inbox chan func()

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	frameCount atomic.Uint64
}

// NewLoop creates a stopped loop; a zero render interval disables render callbacks
func NewLoop(frame, second, render time.Duration, handlers LoopHandlers) *Loop {
	return &Loop{
		handlers:       handlers,
		frameInterval:  frame,
		secondInterval: second,
		renderInterval: render,
		inbox:          make(chan func(), 64),
		stopChan:       make(chan struct{}),
	}
}

// Start begins the loop goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		core.Go(l.run)
	}
}

// Stop halts the loop and waits for the goroutine to exit
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
		if l.running.Load() {
			l.wg.Wait()
			l.running.Store(false)
		}
	})
}

// Post queues fn to run on the loop goroutine; false once stopped
// Blocks while the inbox is full, so producers are throttled by the loop
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}
	select {
	case l.inbox <- fn:
		return true
	case <-l.stopChan:
		return false
	}
}

// Frames returns the number of animation ticks run
func (l *Loop) Frames() uint64 {
	return l.frameCount.Load()
}

func (l *Loop) run() {
	defer l.wg.Done()

	frame := time.NewTicker(l.frameInterval)
	defer frame.Stop()
	second := time.NewTicker(l.secondInterval)
	defer second.Stop()

	var renderC <-chan time.Time
	if l.renderInterval > 0 {
		render := time.NewTicker(l.renderInterval)
		defer render.Stop()
		renderC = render.C
	}

	for {
		select {
		case <-l.stopChan:
			return

		case fn := <-l.inbox:
			fn()

		case <-frame.C:
			if l.handlers.OnFrame != nil {
				l.handlers.OnFrame()
			}
			l.frameCount.Add(1)

		case <-second.C:
			if l.handlers.OnSecond != nil {
				l.handlers.OnSecond()
			}

		case <-renderC:
			if l.handlers.OnRender != nil {
				l.handlers.OnRender()
			}
		}
	}
}
