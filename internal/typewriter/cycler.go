// Package typewriter cycles a fixed list of phrases through a type, pause,
// delete animation. Cycler holds the state and the transition function;
// Animator owns the timer that drives it.
package typewriter

import (
	"errors"
	"time"
)

// ErrInvalidInput is returned when a cycler is constructed without phrases.
var ErrInvalidInput = errors.New("typewriter: phrase list must not be empty")

// Default animation timing.
const (
	DefaultTypeInterval   = 100 * time.Millisecond
	DefaultDeleteInterval = 50 * time.Millisecond
	DefaultPause          = 2000 * time.Millisecond
)

// Mode is the direction the cycler is currently moving in.
type Mode int

const (
	Typing Mode = iota
	Deleting
)

func (m Mode) String() string {
	switch m {
	case Typing:
		return "typing"
	case Deleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// Timing controls the delays between ticks.
type Timing struct {
	TypeInterval   time.Duration
	DeleteInterval time.Duration
	Pause          time.Duration
}

// DefaultTiming returns the stock 100ms / 50ms / 2s timing.
func DefaultTiming() Timing {
	return Timing{
		TypeInterval:   DefaultTypeInterval,
		DeleteInterval: DefaultDeleteInterval,
		Pause:          DefaultPause,
	}
}

func (t Timing) normalized() Timing {
	if t.TypeInterval <= 0 {
		t.TypeInterval = DefaultTypeInterval
	}
	if t.DeleteInterval <= 0 {
		t.DeleteInterval = DefaultDeleteInterval
	}
	if t.Pause <= 0 {
		t.Pause = DefaultPause
	}
	return t
}

// State is a snapshot of a cycler.
type State struct {
	Index  int
	Prefix int
	Mode   Mode
}

// Cycler is not safe for concurrent use; wrap it in an Animator to run it
// on a timer.
type Cycler struct {
	phrases [][]rune
	timing  Timing

	index  int
	prefix int
	mode   Mode
}

// New builds a cycler with the default timing.
func New(phrases []string) (*Cycler, error) {
	return NewWithTiming(phrases, DefaultTiming())
}

// NewWithTiming builds a cycler with custom delays. Zero or negative
// delays fall back to the defaults.
func NewWithTiming(phrases []string, timing Timing) (*Cycler, error) {
	if len(phrases) == 0 {
		return nil, ErrInvalidInput
	}
	runes := make([][]rune, len(phrases))
	for i, p := range phrases {
		runes[i] = []rune(p)
	}
	return &Cycler{
		phrases: runes,
		timing:  timing.normalized(),
		mode:    Typing,
	}, nil
}

// Text returns the part of the current phrase that is typed out.
func (c *Cycler) Text() string {
	return string(c.phrases[c.index][:c.prefix])
}

// State returns a copy of the cycler's position.
func (c *Cycler) State() State {
	return State{Index: c.index, Prefix: c.prefix, Mode: c.mode}
}

// Phrases returns a copy of the rotation.
func (c *Cycler) Phrases() []string {
	out := make([]string, len(c.phrases))
	for i, p := range c.phrases {
		out[i] = string(p)
	}
	return out
}

// Timing returns the delays in effect.
func (c *Cycler) Timing() Timing {
	return c.timing
}

// Delay is how long to wait before the next Tick given the current state.
// A fully typed phrase holds for the pause before deletion starts.
func (c *Cycler) Delay() time.Duration {
	if c.mode == Deleting {
		return c.timing.DeleteInterval
	}
	if c.prefix >= len(c.phrases[c.index]) {
		return c.timing.Pause
	}
	return c.timing.TypeInterval
}

// Tick advances the animation by one step and returns the delay until the
// next one.
func (c *Cycler) Tick() time.Duration {
	current := len(c.phrases[c.index])
	switch c.mode {
	case Typing:
		if c.prefix < current {
			c.prefix++
		} else {
			c.mode = Deleting
		}
	case Deleting:
		if c.prefix > 0 {
			c.prefix--
		} else {
			c.mode = Typing
			c.index = (c.index + 1) % len(c.phrases)
		}
	}
	return c.Delay()
}
