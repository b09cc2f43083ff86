// Package particles lays out the decorative particles floating behind the page.
package particles

import (
	"math/rand/v2"
	"time"
)

// DefaultCount is how many particles the page renders.
const DefaultCount = 20

const (
	maxDelay     = 6 * time.Second
	minDuration  = 6 * time.Second
	durationSpan = 4 * time.Second
)

// Particle is one floating dot: a horizontal position and its animation timing.
type Particle struct {
	LeftPercent float64       `json:"left_percent"`
	Delay       time.Duration `json:"delay"`
	Duration    time.Duration `json:"duration"`
}

// DelaySeconds is the animation delay in seconds, for CSS.
func (p Particle) DelaySeconds() float64 { return p.Delay.Seconds() }

// DurationSeconds is the animation duration in seconds, for CSS.
func (p Particle) DurationSeconds() float64 { return p.Duration.Seconds() }

// Layout draws n particles from rng.
func Layout(n int, rng *rand.Rand) []Particle {
	if n <= 0 {
		return nil
	}
	out := make([]Particle, n)
	for i := range out {
		out[i] = Particle{
			LeftPercent: rng.Float64() * 100,
			Delay:       time.Duration(rng.Int64N(int64(maxDelay))),
			Duration:    minDuration + time.Duration(rng.Int64N(int64(durationSpan))),
		}
	}
	return out
}

// Random lays out n particles from a freshly seeded source.
func Random(n int) []Particle {
	return Layout(n, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}
