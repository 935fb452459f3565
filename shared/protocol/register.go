package protocol

import (
	"github.com/automoto/tilepatrol/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition    uint = 10
	SyncIDNetPlayerState uint = 12
	SyncIDNetEnemy       uint = 14
	SyncIDNetLevelState  uint = 15
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
	InterpIDNetEnemy    uint8 = 14
)

// RegisterComponents registers the network components with necs. Server and
// client must both call it before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	// Player state changes are discrete, no interpolation
	if err := esync.RegisterComponent(
		SyncIDNetPlayerState,
		netcomponents.NetPlayerStateData{},
		netcomponents.NetPlayerState,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetEnemy,
		netcomponents.NetEnemyData{},
		netcomponents.NetEnemy,
		esync.WithInterpFn(InterpIDNetEnemy, netcomponents.LerpNetEnemy),
	); err != nil {
		return err
	}

	return esync.RegisterComponent(
		SyncIDNetLevelState,
		netcomponents.NetLevelStateData{},
		netcomponents.NetLevelState,
	)
}
