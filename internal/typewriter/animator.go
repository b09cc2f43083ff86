package typewriter

import (
	"context"
	"sync"
	"time"
)

// Timer is a pending scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// WallClock schedules on real time.
var WallClock Scheduler = wallClock{}

// Option configures an Animator.
type Option func(*Animator)

// WithScheduler replaces the wall clock, mostly for tests.
func WithScheduler(s Scheduler) Option {
	return func(a *Animator) {
		if s != nil {
			a.clock = s
		}
	}
}

// WithOnChange registers a callback that receives the display text after
// each tick that changed it. The callback runs on the timer goroutine while
// the animator lock is held, so it must not call back into the Animator.
func WithOnChange(fn func(text string)) Option {
	return func(a *Animator) {
		a.onChange = fn
	}
}

// Animator drives a Cycler from a single self-rescheduling timer.
type Animator struct {
	mu       sync.Mutex
	cycler   *Cycler
	clock    Scheduler
	onChange func(string)

	timer   Timer
	running bool
	stopped bool
}

// NewAnimator takes ownership of c. Callers must not tick c directly once
// it is handed over.
func NewAnimator(c *Cycler, opts ...Option) *Animator {
	a := &Animator{cycler: c, clock: WallClock}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start schedules the first tick. Calling Start on a running or stopped
// animator does nothing.
func (a *Animator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running || a.stopped {
		return
	}
	a.running = true
	a.timer = a.clock.AfterFunc(a.cycler.Delay(), a.fire)
}

// Stop cancels the pending tick. Once Stop returns the cycler is never
// touched again. Stopped animators cannot be restarted.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	a.stopped = true
	a.running = false
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// Run starts the animation and blocks until ctx is done.
func (a *Animator) Run(ctx context.Context) error {
	a.Start()
	<-ctx.Done()
	a.Stop()
	return ctx.Err()
}

// Text returns the current display text.
func (a *Animator) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cycler.Text()
}

// State returns a snapshot of the underlying cycler.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cycler.State()
}

// Running reports whether a tick is scheduled.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

func (a *Animator) fire() {
	a.mu.Lock()
	defer a.mu.Unlock()
	// A timer that already fired can lose the race against Stop.
	if a.stopped {
		return
	}
	before := a.cycler.prefix
	delay := a.cycler.Tick()
	if a.onChange != nil && a.cycler.prefix != before {
		a.onChange(a.cycler.Text())
	}
	a.timer = a.clock.AfterFunc(delay, a.fire)
}
