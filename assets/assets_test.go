package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevels(t *testing.T) {
	set := MustLoadLevels()

	require.Equal(t, []string{"01-first-patrol", "02-ledges"}, set.Names)
	for _, name := range set.Names {
		lvl := set.Levels[name]
		require.NotNil(t, lvl, name)
		assert.NotEmpty(t, lvl.EnemySpawns, name)
		assert.NotEmpty(t, lvl.PlayerSpawns, name)
		assert.NotEmpty(t, lvl.Exits, name)
		assert.Greater(t, lvl.TimeLimit, 0.0, name)
	}
}

func TestLevelSetAtWraps(t *testing.T) {
	set := MustLoadLevels()

	assert.Same(t, set.At(0), set.At(set.Len()))
	assert.Same(t, set.At(set.Len()-1), set.At(-1))
	assert.Equal(t, 1, set.Index("02-ledges"))
	assert.Equal(t, -1, set.Index("missing"))
}

func TestLoadLevelsFromMissingDir(t *testing.T) {
	_, err := LoadLevelsFrom(t.TempDir())
	assert.Error(t, err)
}
