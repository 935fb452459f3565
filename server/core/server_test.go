package core

import (
	"os"
	"testing"

	"github.com/automoto/tilepatrol/assets"
	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/shared/messages"
	"github.com/automoto/tilepatrol/shared/netcomponents"
	"github.com/automoto/tilepatrol/shared/protocol"
	"github.com/automoto/tilepatrol/systems"
	"github.com/automoto/tilepatrol/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const testDt = 0.05

func TestMain(m *testing.M) {
	if err := protocol.RegisterComponents(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(assets.MustLoadLevels(), "", 20)
	require.NoError(t, err)
	return s
}

func TestNewServerRejectsUnknownLevel(t *testing.T) {
	_, err := NewServer(assets.MustLoadLevels(), "99-nope", 20)
	assert.ErrorContains(t, err, "99-nope")

	_, err = NewServer(&assets.LevelSet{}, "", 20)
	assert.Error(t, err)
}

func TestNewServerStartsAtNamedLevel(t *testing.T) {
	s, err := NewServer(assets.MustLoadLevels(), "02-ledges", 20)
	require.NoError(t, err)
	assert.Equal(t, "02-ledges", s.LevelName())
}

func TestTickMirrorsEnemies(t *testing.T) {
	s := newTestServer(t)
	s.Tick(testDt)

	require.Len(t, s.mirrors.enemies, 3)
	for _, mi := range s.mirrors.enemies {
		enemy := components.Enemy.Get(s.world.Entry(mi.source))
		net := netcomponents.NetEnemy.Get(s.world.Entry(mi.net))
		pos := netcomponents.NetPosition.Get(s.world.Entry(mi.net))

		assert.Equal(t, enemy.Index, net.Index)
		assert.InDelta(t, enemy.Position.X, net.X, 1e-9)
		assert.InDelta(t, enemy.Position.X, pos.X, 1e-9)
		assert.Equal(t, int(enemy.Direction), net.Direction)
		assert.Equal(t, enemy.Waiting(), net.Waiting)
	}

	lvl := netcomponents.NetLevelState.Get(s.world.Entry(s.mirrors.level))
	assert.Equal(t, "01-first-patrol", lvl.Level)
	assert.InDelta(t, 60-testDt, lvl.TimeRemaining, 1e-9)
}

func TestQueuedInputMovesPlayer(t *testing.T) {
	s := newTestServer(t)
	s.Tick(testDt)
	startX := netcomponents.NetPosition.Get(s.world.Entry(s.mirrors.player.net)).X

	s.QueueInput(messages.PlayerInput{Sequence: 7, Direction: 1})
	for i := 0; i < 5; i++ {
		s.Tick(testDt)
	}

	dst := s.world.Entry(s.mirrors.player.net)
	assert.Greater(t, netcomponents.NetPosition.Get(dst).X, startX)

	state := netcomponents.NetPlayerState.Get(dst)
	assert.Equal(t, uint32(7), state.LastSequence)
	assert.Equal(t, cfg.DirectionRight, state.Direction)
	assert.True(t, state.Alive)
}

func TestDrainInputKeepsTappedJump(t *testing.T) {
	s := newTestServer(t)
	s.QueueInput(messages.PlayerInput{Sequence: 1, Direction: -1, Jump: true})
	s.QueueInput(messages.PlayerInput{Sequence: 2, Direction: -1})

	actions, seq := s.drainInput()
	assert.Equal(t, uint32(2), seq)
	assert.True(t, actions[cfg.ActionJump])
	assert.True(t, actions[cfg.ActionMoveLeft])

	// Held state carries over when nothing new arrives.
	actions, seq = s.drainInput()
	assert.Equal(t, uint32(2), seq)
	assert.False(t, actions[cfg.ActionJump])
	assert.True(t, actions[cfg.ActionMoveLeft])
}

func TestDeathIsMirrored(t *testing.T) {
	s := newTestServer(t)
	playerEntry, ok := systems.PlayerEntry(s.world)
	require.True(t, ok)
	require.True(t, systems.KillPlayer(s.world, playerEntry, nil))

	s.Tick(testDt)

	state := netcomponents.NetPlayerState.Get(s.world.Entry(s.mirrors.player.net))
	assert.False(t, state.Alive)
	assert.Equal(t, 1, state.Deaths)
	assert.Equal(t, cfg.Die, state.StateID)
}

func TestFinishedLevelLoadsNext(t *testing.T) {
	s := newTestServer(t)
	s.Tick(testDt)

	lvlEntry, ok := components.Level.First(s.world)
	require.True(t, ok)
	components.Level.Get(lvlEntry).ReachedExit = true

	s.QueueInput(messages.PlayerInput{Sequence: 1, Jump: true})
	s.Tick(testDt)

	assert.Equal(t, "02-ledges", s.LevelName())
	assert.Equal(t, len(s.levels.At(1).EnemySpawns), countEntries(s.world, tags.Enemy))
	assert.Equal(t, 1, countEntries(s.world, components.Level))
	assert.Len(t, s.mirrors.enemies, len(s.levels.At(1).EnemySpawns))

	lvl := netcomponents.NetLevelState.Get(s.world.Entry(s.mirrors.level))
	assert.Equal(t, "02-ledges", lvl.Level)
	assert.False(t, lvl.ReachedExit)
}

func countEntries(world donburi.World, c interface {
	Each(donburi.World, func(*donburi.Entry))
}) int {
	n := 0
	c.Each(world, func(*donburi.Entry) { n++ })
	return n
}
