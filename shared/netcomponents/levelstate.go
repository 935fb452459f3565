package netcomponents

import "github.com/yohamta/donburi"

type NetLevelStateData struct {
	Level         string
	TimeRemaining float64
	ReachedExit   bool
	TimedOut      bool
}

var NetLevelState = donburi.NewComponentType[NetLevelStateData]()
