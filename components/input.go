package components

import (
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions, merged across keyboard and gamepads.
type InputData struct {
	input.State
}

var Input = donburi.NewComponentType[InputData]()
