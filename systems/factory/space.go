package factory

import (
	"github.com/automoto/tilepatrol/archetypes"
	"github.com/automoto/tilepatrol/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(world donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(world)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the world's collision space, if there is one.
func addToSpace(world donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(world); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
