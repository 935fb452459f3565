package factory

import (
	"github.com/automoto/tilepatrol/archetypes"
	"github.com/automoto/tilepatrol/components"
	"github.com/automoto/tilepatrol/shared/leveldata"
	"github.com/automoto/tilepatrol/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateWall adds a collision tile. Impassable tiles block from every side;
// platform tiles only catch a body falling onto them.
func CreateWall(world donburi.World, r leveldata.SolidRect) *donburi.Entry {
	arch, tag := archetypes.Wall, tags.ResolvSolid
	if r.Collision == leveldata.Platform {
		arch, tag = archetypes.Platform, tags.ResolvPlatform
	}
	wall := arch.Spawn(world)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(world, obj)

	return wall
}
