package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathData drives the player's death sequence. It stays attached for the
// entity's lifetime; Active marks a running sequence.
type DeathData struct {
	Active bool
	Tween  *gween.Tween
	Offset float64 // how far the body has sunk
}

var Death = donburi.NewComponentType[DeathData]()
