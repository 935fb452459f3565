package patrol

import "github.com/automoto/tilepatrol/shared/netconfig"

// View is the level state the enemy's animation depends on.
type View struct {
	PlayerAlive   bool
	ReachedExit   bool
	TimeRemaining float64
}

// Presentation says which animation to play and whether to mirror it.
type Presentation struct {
	State netconfig.StateID
	FlipX bool
}

// SelectAnimation picks idle or run for the enemy. The art faces left, so an
// enemy facing right is drawn mirrored.
func SelectAnimation(e *Enemy, v View) Presentation {
	p := Presentation{State: netconfig.Running, FlipX: e.Direction > 0}
	if !v.PlayerAlive || v.ReachedExit || v.TimeRemaining <= 0 || e.WaitTimer > 0 {
		p.State = netconfig.Idle
	}
	return p
}
