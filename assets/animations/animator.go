// Package animations converts elapsed time into sprite-sheet frame indices.
package animations

import "time"

// Data is the static timing of a cyclic animation, taken from game data.
type Data struct {
	Frames        uint32
	FrameDuration time.Duration
}

// NewData spreads a full cycle duration evenly over frames.
func NewData(frames uint32, cycle time.Duration) Data {
	if frames == 0 {
		return Data{}
	}
	return Data{Frames: frames, FrameDuration: cycle / time.Duration(frames)}
}

// Start returns a running animator at the first frame.
func (d Data) Start() Animator {
	return Animator{Data: d, running: true}
}

// Stopped returns an idle animator at the first frame.
func (d Data) Stopped() Animator {
	return Animator{Data: d}
}

// Animator is a frame clock. It is a plain value: every operation returns the
// updated copy, so holders replace it wholesale.
type Animator struct {
	Data
	elapsed time.Duration
	running bool
}

// Start resets the clock and marks it running.
func (a Animator) Start() Animator {
	return a.Data.Start()
}

// Stop marks the clock idle and rewinds it to the first frame.
func (a Animator) Stop() Animator {
	return a.Data.Stopped()
}

// Advance accumulates delta while running. A stopped animator is returned unchanged.
func (a Animator) Advance(delta time.Duration) Animator {
	if !a.running || delta <= 0 {
		return a
	}
	a.elapsed += delta
	return a
}

// Frame is floor(elapsed / frame duration) mod frame count, always in [0, Frames).
func (a Animator) Frame() uint32 {
	if a.Frames == 0 || a.FrameDuration <= 0 {
		return 0
	}
	return uint32((a.elapsed / a.FrameDuration) % time.Duration(a.Frames))
}

func (a Animator) Elapsed() time.Duration { return a.elapsed }

func (a Animator) Running() bool { return a.running }

// Cycle is the duration of one full pass over all frames.
func (d Data) Cycle() time.Duration {
	return d.FrameDuration * time.Duration(d.Frames)
}
