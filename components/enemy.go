package components

import (
	"github.com/automoto/tilepatrol/shared/patrol"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	*patrol.Enemy
	Index  int    // position in the level's spawn list
	Sprite string // sprite sheet key

	// Spawn state, restored when the level resets
	SpawnX, SpawnY float64
	SpawnFacing    patrol.Direction

	Last patrol.Result // outcome of the most recent tick
}

var Enemy = donburi.NewComponentType[EnemyData]()
