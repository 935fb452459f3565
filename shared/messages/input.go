package messages

import "github.com/automoto/tilepatrol/shared/netconfig"

// PlayerInput is sent by the controlling client whenever its held input
// changes.
type PlayerInput struct {
	Sequence  uint32 // incrementing ID, echoed back in NetPlayerState
	Direction int    // -1 left, 0 none, 1 right
	Jump      bool
	Timestamp int64 // client clock, Unix ms
}

// Actions expands the message into the per-action held state.
func (p PlayerInput) Actions() [netconfig.ActionCount]bool {
	var a [netconfig.ActionCount]bool
	a[netconfig.ActionMoveLeft] = p.Direction < 0
	a[netconfig.ActionMoveRight] = p.Direction > 0
	a[netconfig.ActionJump] = p.Jump
	return a
}
