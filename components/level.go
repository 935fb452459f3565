package components

import (
	"github.com/automoto/tilepatrol/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *leveldata.Level

	TimeLimit     float64
	TimeRemaining float64
	Elapsed       float64 // seconds of play since the level (re)started

	ReachedExit bool
	TimedOut    bool
	Finished    bool // exit reached and acknowledged; the caller moves on
}

var Level = donburi.NewComponentType[LevelData]()
