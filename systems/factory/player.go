package factory

import (
	"github.com/automoto/tilepatrol/archetypes"
	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player with its feet at x, y.
func CreatePlayer(world donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(world)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(world, obj)

	components.Player.SetValue(player, components.PlayerData{
		Direction: cfg.DirectionRight,
		Alive:     true,
		SpawnX:    x,
		SpawnY:    y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Acceleration: cfg.Player.Acceleration,
		Gravity:      cfg.Player.Gravity,
		Friction:     cfg.Player.Friction,
		MaxSpeed:     cfg.Player.MaxSpeed,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
	})
	components.Animation.Set(player, GenerateAnimations("player", cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))

	return player
}
