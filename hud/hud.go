// Package hud is the in-level countdown and score display.
package hud

import (
	"fmt"
	"math"
	"time"

	"github.com/automoto/husky-loves-ducky/resource"
	"github.com/automoto/husky-loves-ducky/text"
)

// DefaultTimer is how long a level lasts.
const DefaultTimer = 100 * time.Second

type Hud struct {
	Timer time.Duration
	Score uint32
}

func New() Hud {
	return Hud{Timer: DefaultTimer}
}

// Update applies a score delta and counts the timer down by elapsed. It
// reports false once elapsed exceeds the remaining time; reaching exactly
// zero still counts as running.
func (h Hud) Update(delta int32, elapsed time.Duration) (Hud, bool) {
	h.Score = addScore(h.Score, delta)
	if elapsed > h.Timer {
		return h, false
	}
	h.Timer -= elapsed
	return h, true
}

func addScore(score uint32, delta int32) uint32 {
	if delta < 0 {
		d := uint32(-int64(delta))
		if d > score {
			return 0
		}
		return score - d
	}
	if uint32(delta) > math.MaxUint32-score {
		return math.MaxUint32
	}
	return score + uint32(delta)
}

// Seconds is the remaining time truncated to whole seconds.
func (h Hud) Seconds() uint64 {
	return uint64(h.Timer / time.Second)
}

type Assets struct {
	timer text.Text[uint64]
	score text.Text[uint32]
}

func LoadAssets(h Hud, m resource.Manager) (Assets, error) {
	font, err := m.Font(resource.KenPixel, 32)
	if err != nil {
		return Assets{}, err
	}
	timer, err := text.Load(font, text.Yellow, h.Seconds(), formatTimer, resource.Top(0).Center(960))
	if err != nil {
		return Assets{}, err
	}
	score, err := text.Load(font, text.Yellow, h.Score, formatScore, resource.Top(0).Center(320))
	if err != nil {
		return Assets{}, err
	}
	return Assets{timer: timer, score: score}, nil
}

// Next refreshes the labels whose displayed value changed.
func (a Assets) Next(h Hud) (Assets, error) {
	var err error
	if a.timer, err = a.timer.Update(h.Seconds()); err != nil {
		return a, err
	}
	if a.score, err = a.score.Update(h.Score); err != nil {
		return a, err
	}
	return a, nil
}

func (a Assets) Show(r resource.Renderer) error {
	return resource.ShowAll(r, a.timer, a.score)
}

func formatTimer(s uint64) string { return fmt.Sprintf("Time: %03d", s) }

func formatScore(s uint32) string { return fmt.Sprintf("Score: %05d", s) }
