package systems

import (
	"testing"

	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/shared/leveldata"
	"github.com/automoto/tilepatrol/shared/patrol"
	"github.com/automoto/tilepatrol/systems/factory"
	"github.com/automoto/tilepatrol/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const tick = 1.0 / 60

var flatRows = []string{
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"##########",
}

func testLevel(rows []string, enemies []leveldata.EnemySpawn, players []leveldata.SpawnPoint) *leveldata.Level {
	grid := leveldata.MustParseGrid(rows, 32, 32)
	return &leveldata.Level{
		Name:         "test",
		Grid:         grid,
		EnemySpawns:  enemies,
		PlayerSpawns: players,
		MapWidth:     grid.Width * 32,
		MapHeight:    grid.Height * 32,
	}
}

func newTestWorld(t *testing.T, lvl *leveldata.Level) donburi.World {
	t.Helper()
	stats = newStats()
	return factory.BuildWorld(lvl)
}

func enemies(world donburi.World) []*components.EnemyData {
	var out []*components.EnemyData
	tags.Enemy.Each(world, func(e *donburi.Entry) {
		out = append(out, components.Enemy.Get(e))
	})
	return out
}

func mustPlayer(t *testing.T, world donburi.World) *donburi.Entry {
	t.Helper()
	entry, ok := PlayerEntry(world)
	require.True(t, ok)
	return entry
}

func mustLevel(t *testing.T, world donburi.World) *components.LevelData {
	t.Helper()
	lvl, ok := currentLevel(world)
	require.True(t, ok)
	return lvl
}

func hold(actions ...cfg.ActionID) [cfg.ActionCount]bool {
	var in [cfg.ActionCount]bool
	for _, a := range actions {
		in[a] = true
	}
	return in
}

func TestStepMovesEnemies(t *testing.T) {
	world := newTestWorld(t, testLevel(flatRows, []leveldata.EnemySpawn{
		{X: 160, Y: 160, Facing: 1},
	}, nil))

	Step(world, 0.5)

	es := enemies(world)
	require.Len(t, es, 1)
	assert.Equal(t, 192.0, es[0].Position.X)
	assert.Equal(t, 32.0, es[0].Last.Moved)

	anim := components.Animation.Get(firstEnemyEntry(t, world))
	assert.Equal(t, cfg.Running, anim.CurrentSheet)
	assert.True(t, anim.FlipX, "right-facing enemies are mirrored")
}

func firstEnemyEntry(t *testing.T, world donburi.World) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Enemy.First(world)
	require.True(t, ok)
	return entry
}

func TestEnemyWaitsAtEdgeThenTurns(t *testing.T) {
	rows := []string{
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"####......",
	}
	world := newTestWorld(t, testLevel(rows, []leveldata.EnemySpawn{
		{X: 96, Y: 160, Facing: 1},
	}, nil))
	enemy := enemies(world)[0]

	var waited, turned bool
	for i := 0; i < 180 && !turned; i++ {
		Step(world, tick)
		waited = waited || enemy.Last.StartedWaiting
		turned = enemy.Last.Turned
		if enemy.Waiting() {
			anim := components.Animation.Get(firstEnemyEntry(t, world))
			assert.Equal(t, cfg.Idle, anim.CurrentSheet)
		}
	}

	assert.True(t, waited)
	require.True(t, turned)
	assert.Equal(t, patrol.Left, enemy.Direction)
	assert.LessOrEqual(t, enemy.BoundingRectangle().Max.X, 128, "never walks past the ledge")
}

func TestEnemyKillsPlayer(t *testing.T) {
	world := newTestWorld(t, testLevel(flatRows,
		[]leveldata.EnemySpawn{{X: 160, Y: 160}},
		[]leveldata.SpawnPoint{{X: 176, Y: 160}},
	))
	playerEntry := mustPlayer(t, world)
	enemy := enemies(world)[0]

	Step(world, tick)

	player := components.Player.Get(playerEntry)
	assert.False(t, player.Alive)
	assert.Equal(t, 1, player.Deaths)
	assert.Same(t, enemy.Enemy, player.KilledBy)
	assert.Equal(t, components.CauseEnemy, player.Cause)
	assert.True(t, enemy.Last.Killed)
	assert.True(t, components.Death.Get(playerEntry).Active)
	assert.Equal(t, 1, Stats().Deaths)
	assert.Equal(t, 1, Stats().Levels["test"].Deaths)

	// Enemies freeze while the player is dead.
	x := enemy.Position.X
	Step(world, tick)
	assert.Equal(t, x, enemy.Position.X)
	assert.False(t, enemy.Last.Killed)
	assert.Equal(t, 1, player.Deaths)
}

func TestTwoEnemiesKillOnce(t *testing.T) {
	world := newTestWorld(t, testLevel(flatRows,
		[]leveldata.EnemySpawn{{X: 160, Y: 160}, {X: 190, Y: 160}},
		[]leveldata.SpawnPoint{{X: 176, Y: 160}},
	))

	Step(world, tick)

	for _, e := range enemies(world) {
		assert.True(t, e.Last.Killed, "enemy %d", e.Index)
	}
	player := components.Player.Get(mustPlayer(t, world))
	assert.Equal(t, 1, player.Deaths)
	assert.Equal(t, 1, Stats().Deaths)
}

func TestKillPlayerIsIdempotent(t *testing.T) {
	world := newTestWorld(t, testLevel(flatRows, nil, []leveldata.SpawnPoint{{X: 176, Y: 160}}))
	playerEntry := mustPlayer(t, world)

	assert.True(t, KillPlayer(world, playerEntry, nil))
	assert.False(t, KillPlayer(world, playerEntry, nil))

	player := components.Player.Get(playerEntry)
	assert.Equal(t, 1, player.Deaths)
	assert.Equal(t, components.CauseFell, player.Cause)
	assert.Nil(t, player.KilledBy)
}

func TestDeathSequenceRespawns(t *testing.T) {
	world := newTestWorld(t, testLevel(flatRows, nil, []leveldata.SpawnPoint{{X: 176, Y: 160}}))
	playerEntry := mustPlayer(t, world)
	obj := components.Object.Get(playerEntry)

	// Walk away from the spawn first.
	for i := 0; i < 30; i++ {
		SetInput(world, hold(cfg.ActionMoveRight))
		Step(world, tick)
	}
	x, _ := obj.Feet()
	require.Greater(t, x, 176.0)

	KillPlayer(world, playerEntry, nil)
	SetInput(world, hold())
	Step(world, cfg.Player.DeathDuration/2)

	death := components.Death.Get(playerEntry)
	assert.True(t, death.Active)
	assert.Greater(t, death.Offset, 0.0)
	assert.Equal(t, cfg.Die, components.Animation.Get(playerEntry).CurrentSheet)

	Step(world, cfg.Player.DeathDuration)

	player := components.Player.Get(playerEntry)
	assert.True(t, player.Alive)
	assert.False(t, death.Active)
	x, y := obj.Feet()
	assert.InDelta(t, 176.0, x, 0.001)
	assert.InDelta(t, 160.0, y, 1)
}

func TestPlayerFallsOutOfLevel(t *testing.T) {
	rows := []string{
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"#####.####",
	}
	world := newTestWorld(t, testLevel(rows, nil, []leveldata.SpawnPoint{{X: 176, Y: 96}}))
	playerEntry := mustPlayer(t, world)
	player := components.Player.Get(playerEntry)

	for i := 0; i < 120 && player.Alive; i++ {
		Step(world, tick)
	}

	require.False(t, player.Alive)
	assert.Equal(t, components.CauseFell, player.Cause)
	assert.Nil(t, player.KilledBy)
}

func TestPlayerStopsAtWall(t *testing.T) {
	rows := []string{
		"..........",
		"..........",
		"..........",
		"..........",
		"........#.",
		"##########",
	}
	world := newTestWorld(t, testLevel(rows, nil, []leveldata.SpawnPoint{{X: 100, Y: 160}}))
	playerEntry := mustPlayer(t, world)
	obj := components.Object.Get(playerEntry)

	for i := 0; i < 120; i++ {
		SetInput(world, hold(cfg.ActionMoveRight))
		Step(world, tick)
	}

	assert.InDelta(t, 256.0, obj.X+obj.W, 0.05)
	assert.InDelta(t, 160.0, obj.Y+obj.H, 0.05)
	assert.True(t, components.Physics.Get(playerEntry).OnGround)
	assert.Equal(t, cfg.DirectionRight, components.Player.Get(playerEntry).Direction)
}

func TestPlayerJumps(t *testing.T) {
	world := newTestWorld(t, testLevel(flatRows, nil, []leveldata.SpawnPoint{{X: 100, Y: 160}}))
	playerEntry := mustPlayer(t, world)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	SetInput(world, hold())
	Step(world, tick)
	require.True(t, physics.OnGround)

	SetInput(world, hold(cfg.ActionJump))
	Step(world, tick)
	assert.False(t, physics.OnGround)
	assert.Less(t, physics.SpeedY, 0.0)
	assert.Less(t, obj.Y+obj.H, 160.0)
	assert.Equal(t, cfg.Jump, components.Animation.Get(playerEntry).CurrentSheet)

	// Holding jump does not jump again; the player comes back down.
	for i := 0; i < 120; i++ {
		SetInput(world, hold(cfg.ActionJump))
		Step(world, tick)
	}
	assert.True(t, physics.OnGround)
	assert.InDelta(t, 160.0, obj.Y+obj.H, 0.05)
}

func TestPlayerLandsOnPlatform(t *testing.T) {
	rows := []string{
		"..........",
		"..........",
		"..........",
		"....--....",
		"..........",
		"##########",
	}
	world := newTestWorld(t, testLevel(rows, nil, []leveldata.SpawnPoint{{X: 160, Y: 64}}))
	playerEntry := mustPlayer(t, world)
	obj := components.Object.Get(playerEntry)

	for i := 0; i < 60; i++ {
		Step(world, tick)
	}

	assert.True(t, components.Physics.Get(playerEntry).OnGround)
	assert.InDelta(t, 96.0, obj.Y+obj.H, 0.05)
}

func TestReachingExitFinishesLevel(t *testing.T) {
	lvl := testLevel(flatRows, []leveldata.EnemySpawn{{X: 32, Y: 160}}, []leveldata.SpawnPoint{{X: 150, Y: 160}})
	lvl.Exits = []leveldata.Rect{{X: 192, Y: 96, W: 32, H: 64}}
	world := newTestWorld(t, lvl)
	level := mustLevel(t, world)

	for i := 0; i < 60 && !level.ReachedExit; i++ {
		SetInput(world, hold(cfg.ActionMoveRight))
		Step(world, tick)
	}

	require.True(t, level.ReachedExit)
	assert.False(t, LevelFinished(world))
	assert.Equal(t, 1, Stats().Levels["test"].Completions)
	assert.Greater(t, level.Elapsed, 0.0)
	assert.Equal(t, level.Elapsed, Stats().Levels["test"].BestTime)

	enemy := enemies(world)[0]
	x := enemy.Position.X
	remaining := level.TimeRemaining
	Step(world, tick)
	assert.Equal(t, x, enemy.Position.X, "enemies stop once the exit is reached")
	assert.Equal(t, remaining, level.TimeRemaining)
	anim := components.Animation.Get(firstEnemyEntry(t, world))
	assert.Equal(t, cfg.Idle, anim.CurrentSheet)

	SetInput(world, hold(cfg.ActionJump))
	Step(world, tick)
	assert.True(t, LevelFinished(world))
}

func TestTimeOutFreezesAndRestarts(t *testing.T) {
	lvl := testLevel(flatRows, []leveldata.EnemySpawn{{X: 288, Y: 160}}, nil)
	lvl.TimeLimit = 1
	world := newTestWorld(t, lvl)
	level := mustLevel(t, world)
	enemy := enemies(world)[0]

	Step(world, 0.5)
	Step(world, 0.5)
	require.True(t, level.TimedOut)
	assert.Equal(t, 0.0, level.TimeRemaining)
	assert.Equal(t, 224.0, enemy.Position.X)

	Step(world, 0.5)
	assert.Equal(t, 224.0, enemy.Position.X, "enemies stop when time runs out")

	SetInput(world, hold(cfg.ActionJump))
	Step(world, tick)

	assert.False(t, level.TimedOut)
	assert.Equal(t, 1.0, level.TimeRemaining)
	assert.Equal(t, 288.0, enemy.Position.X)
	assert.Equal(t, patrol.Left, enemy.Direction)
}

func TestLevelClockStopsWhileDead(t *testing.T) {
	world := newTestWorld(t, testLevel(flatRows, nil, []leveldata.SpawnPoint{{X: 176, Y: 160}}))
	level := mustLevel(t, world)
	start := level.TimeRemaining

	KillPlayer(world, mustPlayer(t, world), nil)
	Step(world, 0.25)

	assert.Equal(t, start, level.TimeRemaining)
	assert.Equal(t, cfg.Level.TimeLimit, level.TimeLimit, "maps without a limit use the default")
}

func TestApplyEnemyTuning(t *testing.T) {
	world := newTestWorld(t, testLevel(flatRows, []leveldata.EnemySpawn{{X: 160, Y: 160}}, nil))
	enemy := enemies(world)[0]
	enemy.WaitTimer = 0.4

	tuning := cfg.Enemy
	tuning.MoveSpeed = 100
	tuning.MaxWaitTime = 0.25
	tuning.RunFrameTime = 0.05
	ApplyEnemyTuning(world, tuning)

	assert.Equal(t, 100.0, enemy.MoveSpeed)
	assert.Equal(t, 0.25, enemy.MaxWaitTime)
	assert.Equal(t, 0.25, enemy.WaitTimer)
	anim := components.Animation.Get(firstEnemyEntry(t, world))
	assert.Equal(t, 0.05, anim.Animations[cfg.Running].FrameTime)

	enemy.WaitTimer = 0.1
	ApplyEnemyTuning(world, tuning)
	assert.Equal(t, 0.1, enemy.WaitTimer, "shorter waits are left alone")
}

func TestRecordExitKeepsBestTime(t *testing.T) {
	stats = newStats()

	assert.True(t, RecordExit("a", 12))
	assert.False(t, RecordExit("a", 15))
	assert.True(t, RecordExit("a", 9.5))

	ls := Stats().Levels["a"]
	assert.Equal(t, 3, ls.Completions)
	assert.Equal(t, 9.5, ls.BestTime)
}

func TestPersistenceWithoutStoreIsNoop(t *testing.T) {
	assert.NoError(t, SaveStats())
	saved, err := LoadStats()
	assert.NoError(t, err)
	assert.Nil(t, saved)
}
