// Package device reads keyboards and standard-layout gamepads into the
// action array the rest of the game consumes.
package device

import (
	"github.com/automoto/husky-loves-ducky/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll returns which actions are held this frame across the keyboard and
// every connected gamepad.
func Poll() [input.ActionCount]bool {
	var held [input.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[action] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					held[action] = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	left, right, up, down := analogStick(gamepadIDs)
	if left {
		held[input.ActionMoveLeft] = true
		held[input.ActionMenuLeft] = true
	}
	if right {
		held[input.ActionMoveRight] = true
		held[input.ActionMenuRight] = true
	}
	if up {
		held[input.ActionMenuUp] = true
	}
	if down {
		held[input.ActionMenuDown] = true
	}

	return held
}

// analogStick reads the left stick of every gamepad against the deadzone.
func analogStick(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return left, right, up, down
}
