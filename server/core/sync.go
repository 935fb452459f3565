package core

import (
	"log"

	"github.com/automoto/tilepatrol/components"
	"github.com/automoto/tilepatrol/shared/netcomponents"
	"github.com/automoto/tilepatrol/systems"
	"github.com/automoto/tilepatrol/tags"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
)

// mirror pairs a simulation entity with the entity that carries its synced
// state. Simulation archetypes never gain net components.
type mirror struct {
	source donburi.Entity
	net    donburi.Entity
}

type mirrorSet struct {
	enemies []mirror
	player  *mirror
	level   donburi.Entity
}

func newMirrorSet(world donburi.World) *mirrorSet {
	m := &mirrorSet{}

	tags.Enemy.Each(world, func(e *donburi.Entry) {
		net := world.Create(netcomponents.NetPosition, netcomponents.NetEnemy)
		if err := srvsync.NetworkSync(world, &net,
			srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetEnemy),
		); err != nil {
			log.Printf("[server] failed to sync enemy %d: %v", components.Enemy.Get(e).Index, err)
		}
		m.enemies = append(m.enemies, mirror{source: e.Entity(), net: net})
	})

	if playerEntry, ok := systems.PlayerEntry(world); ok {
		net := world.Create(netcomponents.NetPosition, netcomponents.NetPlayerState)
		if err := srvsync.NetworkSync(world, &net,
			srvsync.WithInterp(netcomponents.NetPosition),
			netcomponents.NetPlayerState,
		); err != nil {
			log.Printf("[server] failed to sync player: %v", err)
		}
		m.player = &mirror{source: playerEntry.Entity(), net: net}
	}

	m.level = world.Create(netcomponents.NetLevelState)
	if err := srvsync.NetworkSync(world, &m.level, netcomponents.NetLevelState); err != nil {
		log.Printf("[server] failed to sync level state: %v", err)
	}

	return m
}

// copy writes the current simulation state into the mirrors.
func (m *mirrorSet) copy(world donburi.World, levelName string, lastSeq uint32) {
	for _, mi := range m.enemies {
		src := world.Entry(mi.source)
		dst := world.Entry(mi.net)
		enemy := components.Enemy.Get(src)

		netcomponents.NetPosition.SetValue(dst, netcomponents.NetPositionData{
			X: enemy.Position.X,
			Y: enemy.Position.Y,
		})
		netcomponents.NetEnemy.SetValue(dst, netcomponents.NetEnemyData{
			Index:     enemy.Index,
			X:         enemy.Position.X,
			Y:         enemy.Position.Y,
			Direction: int(enemy.Direction),
			State:     components.Animation.Get(src).CurrentSheet,
			Waiting:   enemy.Waiting(),
			Sprite:    enemy.Sprite,
		})
	}

	if m.player != nil {
		src := world.Entry(m.player.source)
		dst := world.Entry(m.player.net)
		player := components.Player.Get(src)
		x, y := components.Object.Get(src).Feet()

		netcomponents.NetPosition.SetValue(dst, netcomponents.NetPositionData{X: x, Y: y})
		netcomponents.NetPlayerState.SetValue(dst, netcomponents.NetPlayerStateData{
			StateID:      components.Animation.Get(src).CurrentSheet,
			Direction:    player.Direction,
			Alive:        player.Alive,
			Deaths:       player.Deaths,
			LastSequence: lastSeq,
		})
	}

	if lvlEntry, ok := components.Level.First(world); ok {
		lvl := components.Level.Get(lvlEntry)
		netcomponents.NetLevelState.SetValue(world.Entry(m.level), netcomponents.NetLevelStateData{
			Level:         levelName,
			TimeRemaining: lvl.TimeRemaining,
			ReachedExit:   lvl.ReachedExit,
			TimedOut:      lvl.TimedOut,
		})
	}
}

func (m *mirrorSet) entities() []donburi.Entity {
	out := make([]donburi.Entity, 0, len(m.enemies)+2)
	for _, mi := range m.enemies {
		out = append(out, mi.net)
	}
	if m.player != nil {
		out = append(out, m.player.net)
	}
	return append(out, m.level)
}
