package systems

import (
	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/yohamta/donburi"
)

// SetInput records the actions held this tick. It must be called once per
// tick before Step so JustPressed sees the previous tick's state.
func SetInput(world donburi.World, actions [cfg.ActionCount]bool) {
	if input := inputState(world); input != nil {
		input.Advance(actions)
	}
}

func inputState(world donburi.World) *components.InputData {
	entry, ok := components.Input.First(world)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}
