package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Wall     = donburi.NewTag().SetName("Wall")
	Platform = donburi.NewTag().SetName("Platform")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
	ResolvPlayer   = "Player"
)
