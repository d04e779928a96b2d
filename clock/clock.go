// Package clock provides the fixed-timestep tick used to drive the simulation.
package clock

import "time"

// Step describes one fixed update.
type Step struct {
	Tick    uint64
	Elapsed time.Duration
}

// Fixed hands out steps of a constant duration.
type Fixed struct {
	delta time.Duration
	tick  uint64
}

// NewFixed returns a clock ticking rate times per second. A non-positive
// rate falls back to 30, the rate the game data timings are tuned for.
func NewFixed(rate int) *Fixed {
	if rate <= 0 {
		rate = 30
	}
	return &Fixed{delta: time.Second / time.Duration(rate)}
}

// Next advances the clock by one tick.
func (f *Fixed) Next() Step {
	f.tick++
	return Step{Tick: f.tick, Elapsed: f.delta}
}

// Delta is the duration of a single tick.
func (f *Fixed) Delta() time.Duration {
	return f.delta
}

// Now is the total simulated time.
func (f *Fixed) Now() time.Duration {
	return time.Duration(f.tick) * f.delta
}
