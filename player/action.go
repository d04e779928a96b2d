package player

import (
	"time"

	"github.com/automoto/husky-loves-ducky/assets/animations"
	"github.com/automoto/husky-loves-ducky/input"
)

// Action is what the player is doing this tick: Idle, Walk or Jump.
type Action interface {
	Animator() animations.Animator
	isAction()
}

type Idle struct {
	Anim animations.Animator
}

// Walk always carries Left or Right.
type Walk struct {
	Direction input.Direction
	Anim      animations.Animator
}

// Jump keeps the direction held at take-off time, which may be None.
type Jump struct {
	Direction input.Direction
	Anim      animations.Animator
}

func (a Idle) Animator() animations.Animator { return a.Anim }
func (a Walk) Animator() animations.Animator { return a.Anim }
func (a Jump) Animator() animations.Animator { return a.Anim }

func (Idle) isAction() {}
func (Walk) isAction() {}
func (Jump) isAction() {}

// Next computes the following action from the jump key, the held direction
// and the tick duration.
func Next(a Action, jump bool, dir input.Direction, elapsed time.Duration) Action {
	switch {
	case jump:
		return Jump{Direction: dir, Anim: stopped(a)}
	case dir == input.None:
		return Idle{Anim: stopped(a)}
	default:
		return Walk{Direction: dir, Anim: running(a, elapsed)}
	}
}

// Update reads the jump key and horizontal movement from the input snapshot.
func Update(a Action, in input.State, elapsed time.Duration) Action {
	return Next(a, in.Down(input.ActionJump), in.Horizontal(), elapsed)
}

func stopped(a Action) animations.Animator {
	switch v := a.(type) {
	case Walk:
		return v.Anim.Stop()
	case Idle:
		return v.Anim
	case Jump:
		return v.Anim
	default:
		panic(inconsistent(a))
	}
}

func running(a Action, elapsed time.Duration) animations.Animator {
	switch v := a.(type) {
	case Walk:
		return v.Anim.Advance(elapsed)
	case Idle:
		return v.Anim.Start()
	case Jump:
		return v.Anim.Start()
	default:
		panic(inconsistent(a))
	}
}
