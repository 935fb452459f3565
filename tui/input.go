package tui

import (
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/gdamore/tcell/v2"
)

// HoldTicks is how long a movement key counts as held after a press.
// Terminals report key repeats but never releases.
const HoldTicks = 12

// Input turns terminal key events into per-tick action state.
type Input struct {
	move     int
	moveLeft int // ticks until the held direction lapses
	jump     bool
	quit     bool
}

// HandleEvent applies one terminal event.
func (in *Input) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	switch key.Key() {
	case tcell.KeyLeft:
		in.hold(cfg.DirectionLeft)
	case tcell.KeyRight:
		in.hold(cfg.DirectionRight)
	case tcell.KeyDown:
		in.move, in.moveLeft = 0, 0
	case tcell.KeyUp:
		in.jump = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.quit = true
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ', 'w', 'k':
			in.jump = true
		case 'a', 'h':
			in.hold(cfg.DirectionLeft)
		case 'd', 'l':
			in.hold(cfg.DirectionRight)
		case 's', 'j':
			in.move, in.moveLeft = 0, 0
		case 'q':
			in.quit = true
		}
	}
}

func (in *Input) hold(dir int) {
	in.move = dir
	in.moveLeft = HoldTicks
}

// Actions returns the action state for the next tick and ages held keys.
// A jump press lasts a single tick.
func (in *Input) Actions() [cfg.ActionCount]bool {
	var a [cfg.ActionCount]bool
	if in.moveLeft > 0 {
		a[cfg.ActionMoveLeft] = in.move < 0
		a[cfg.ActionMoveRight] = in.move > 0
		in.moveLeft--
	}
	a[cfg.ActionJump] = in.jump
	in.jump = false
	return a
}

// Quit reports whether the user asked to leave.
func (in *Input) Quit() bool {
	return in.quit
}
