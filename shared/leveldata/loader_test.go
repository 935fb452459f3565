package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel(os.DirFS("testdata"), "levels/patrol.tmx")
	require.NoError(t, err)

	assert.Equal(t, "patrol", level.Name)
	assert.Equal(t, 320, level.MapWidth)
	assert.Equal(t, 192, level.MapHeight)

	g := level.Grid
	require.NotNil(t, g)
	assert.Equal(t, 10, g.Width)
	assert.Equal(t, 6, g.Height)
	assert.Equal(t, Impassable, g.Classify(0, 3))
	assert.Equal(t, Passable, g.Classify(1, 3))
	assert.Equal(t, Platform, g.Classify(4, 4))
	assert.Equal(t, Platform, g.Classify(5, 4))
	assert.Equal(t, Impassable, g.Classify(5, 5))
	assert.Equal(t, Passable, g.Classify(6, 5), "gap in the floor")
	assert.Equal(t, Impassable, g.Classify(7, 5))
}

func TestLoadLevelObjects(t *testing.T) {
	level, err := LoadLevel(os.DirFS("testdata"), "levels/patrol.tmx")
	require.NoError(t, err)

	require.Len(t, level.EnemySpawns, 2)
	assert.Equal(t, EnemySpawn{X: 96, Y: 160, Sprite: "monsterA", Facing: 1}, level.EnemySpawns[0])
	assert.Equal(t, EnemySpawn{X: 288, Y: 160}, level.EnemySpawns[1])

	require.Len(t, level.PlayerSpawns, 2)
	assert.Equal(t, 64.0, level.PlayerSpawns[0].X, "spawns sorted left to right")
	assert.Equal(t, 0, level.PlayerSpawns[0].Index)
	assert.Equal(t, 256.0, level.PlayerSpawns[1].X)

	require.Len(t, level.Exits, 1)
	assert.Equal(t, Rect{X: 288, Y: 96, W: 32, H: 64}, level.Exits[0])
	assert.Equal(t, 90.0, level.TimeLimit)
}

func TestLoadLevelErrors(t *testing.T) {
	_, err := LoadLevel(os.DirFS("testdata"), "levels/missing.tmx")
	assert.Error(t, err)

	_, err = LoadLevel(os.DirFS("testdata"), "broken/nolayer.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), CollisionLayer)
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("testdata"), "levels")
	require.NoError(t, err)

	assert.Equal(t, []string{"01-first-patrol", "patrol"}, names)
	require.Contains(t, levels, "patrol")
	assert.Len(t, levels["01-first-patrol"].EnemySpawns, 3)
	assert.Equal(t, 60.0, levels["01-first-patrol"].TimeLimit)
}

func TestLoadAllLevelsEmptyDir(t *testing.T) {
	_, _, err := LoadAllLevels(os.DirFS("testdata"), "nothing-here")
	assert.Error(t, err)
}
