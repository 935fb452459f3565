package components

import (
	"github.com/automoto/tilepatrol/shared/patrol"
	"github.com/yohamta/donburi"
)

// DeathCause records why the player last died.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseEnemy
	CauseFell
)

func (c DeathCause) String() string {
	switch c {
	case CauseEnemy:
		return "enemy"
	case CauseFell:
		return "fell"
	}
	return "none"
}

type PlayerData struct {
	Direction int // -1 left, 1 right
	Alive     bool
	Deaths    int

	// Feet position used when respawning
	SpawnX, SpawnY float64

	KilledBy *patrol.Enemy
	Cause    DeathCause
}

var Player = donburi.NewComponentType[PlayerData]()
