package scenes

import (
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyX, ebiten.KeyW, ebiten.KeyUp},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionDebug: {
		Keys: []ebiten.Key{ebiten.KeyF1},
	},
}

// analogDeadzone is how far the left stick must move to count as a press.
const analogDeadzone = 0.25

// readActions samples the keyboard and every connected gamepad.
func readActions() [cfg.ActionCount]bool {
	var actions [cfg.ActionCount]bool
	gamepads := ebiten.AppendGamepadIDs(nil)

	for action, b := range bindings {
		for _, k := range b.Keys {
			if ebiten.IsKeyPressed(k) {
				actions[action] = true
			}
		}
		for _, id := range gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range b.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					actions[action] = true
				}
			}
		}
	}

	for _, id := range gamepads {
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -analogDeadzone {
			actions[cfg.ActionMoveLeft] = true
		} else if x > analogDeadzone {
			actions[cfg.ActionMoveRight] = true
		}
	}
	return actions
}

// debugToggled reports a fresh press of the debug overlay key.
func debugToggled() bool {
	for _, k := range bindings[cfg.ActionDebug].Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
