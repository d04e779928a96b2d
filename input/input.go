// Package input holds the per-tick input snapshot consumed by the simulation.
// It has no dependency on ebiten; polling lives with the game loop.
package input

// Action represents a logical game action
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionZoomIn
	ActionZoomOut
	ActionCount // Must be last - used for array sizing
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Down         bool // Currently held down
	Pressed      bool // Pressed this tick
	JustReleased bool // Released this tick
}

// State stores the current and previous tick's held state for all actions.
// Pressed/JustReleased are derived by comparing the two.
type State struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// Next returns a snapshot whose previous tick is s and whose current tick is held.
func (s State) Next(held [ActionCount]bool) State {
	return State{Current: held, Previous: s.Current}
}

// Action returns the full ActionState for an action.
func (s State) Action(a Action) ActionState {
	if a <= ActionNone || a >= ActionCount {
		return ActionState{}
	}
	curr := s.Current[a]
	prev := s.Previous[a]
	return ActionState{
		Down:         curr,
		Pressed:      curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Down reports whether the action is held this tick.
func (s State) Down(a Action) bool {
	return s.Action(a).Down
}

// Pressed reports whether the action went down this tick.
func (s State) Pressed(a Action) bool {
	return s.Action(a).Pressed
}

// Horizontal resolves the held movement keys into a direction.
// Holding both or neither yields None.
func (s State) Horizontal() Direction {
	return resolve(s.Down(ActionMoveLeft), s.Down(ActionMoveRight))
}

// HorizontalPressed resolves the movement keys pressed this tick.
func (s State) HorizontalPressed() Direction {
	return resolve(s.Pressed(ActionMenuLeft), s.Pressed(ActionMenuRight))
}

func resolve(left, right bool) Direction {
	switch {
	case left && !right:
		return Left
	case right && !left:
		return Right
	default:
		return None
	}
}

// Hold builds a snapshot with the given actions held this tick and nothing held before.
// Useful for scripted input.
func Hold(actions ...Action) State {
	var s State
	for _, a := range actions {
		if a > ActionNone && a < ActionCount {
			s.Current[a] = true
		}
	}
	return s
}
