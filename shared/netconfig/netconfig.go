// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

// StateID identifies a character/entity state for animation and logic.
type StateID int

const (
	StateNone StateID = iota - 1

	// Character animation states
	Idle
	Running
	Jump
	Die
)

// StateToFileName maps StateID to the corresponding sprite set name.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Running: "run",
	Jump:    "jump",
	Die:     "die",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}

// ActionID represents a logical game action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDebug
	ActionCount // Must be last - used for array sizing
)
