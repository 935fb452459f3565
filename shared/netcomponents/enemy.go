package netcomponents

import (
	"github.com/automoto/tilepatrol/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetEnemyData mirrors one patrolling enemy for spectators.
type NetEnemyData struct {
	Index     int
	X, Y      float64 // feet point
	Direction int     // -1 left, 1 right
	State     netconfig.StateID
	Waiting   bool
	Sprite    string
}

var NetEnemy = donburi.NewComponentType[NetEnemyData]()

// LerpNetEnemy interpolates the position only. Facing and state snap to the
// newer snapshot so a turn never shows a half-mirrored frame.
func LerpNetEnemy(from, to NetEnemyData, t float64) *NetEnemyData {
	out := to
	if from.Index == to.Index {
		out.X = lerp(from.X, to.X, t)
		out.Y = lerp(from.Y, to.Y, t)
	}
	return &out
}
