package config

import "github.com/automoto/tilepatrol/shared/netconfig"

// Type aliases so client code can keep using config.StateID.
type StateID = netconfig.StateID
type ActionID = netconfig.ActionID

// Re-export character/entity state constants.
const (
	StateNone = netconfig.StateNone

	Idle    = netconfig.Idle
	Running = netconfig.Running
	Jump    = netconfig.Jump
	Die     = netconfig.Die
)

// Re-export action constants.
const (
	ActionNone      = netconfig.ActionNone
	ActionMoveLeft  = netconfig.ActionMoveLeft
	ActionMoveRight = netconfig.ActionMoveRight
	ActionJump      = netconfig.ActionJump
	ActionDebug     = netconfig.ActionDebug
	ActionCount     = netconfig.ActionCount
)

// Re-export the map (same reference, no copy).
var StateToFileName = netconfig.StateToFileName
