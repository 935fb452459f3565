package netcomponents

import (
	"github.com/automoto/tilepatrol/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetPlayerStateData struct {
	StateID      netconfig.StateID
	Direction    int // -1 left, 1 right
	Alive        bool
	Deaths       int
	LastSequence uint32 // last input sequence applied by the server
	IsLocal      bool   // client-side only, not synced
}

var NetPlayerState = donburi.NewComponentType[NetPlayerStateData]()
