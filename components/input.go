package components

import (
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's pressed state for all actions.
// JustPressed is computed on demand by comparing the two.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Advance shifts the current state into Previous and installs next.
func (i *InputData) Advance(next [cfg.ActionCount]bool) {
	i.Previous = i.Current
	i.Current = next
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

// Horizontal folds the move actions into -1, 0 or 1.
func (i *InputData) Horizontal() int {
	dir := 0
	if i.Current[cfg.ActionMoveLeft] {
		dir--
	}
	if i.Current[cfg.ActionMoveRight] {
		dir++
	}
	return dir
}

var Input = donburi.NewComponentType[InputData]()
