package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/tilepatrol/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LevelsDir is where .tmx files live inside a level file system.
const LevelsDir = "levels"

// LevelSet is every level of a run in play order.
type LevelSet struct {
	Names  []string
	Levels map[string]*leveldata.Level
}

// Len returns the number of levels.
func (s *LevelSet) Len() int {
	return len(s.Names)
}

// At returns the i-th level, wrapping around at both ends.
func (s *LevelSet) At(i int) *leveldata.Level {
	n := len(s.Names)
	return s.Levels[s.Names[((i%n)+n)%n]]
}

// Index returns the position of the named level, or -1.
func (s *LevelSet) Index(name string) int {
	for i, n := range s.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// LoadLevels loads every level under LevelsDir in fsys.
func LoadLevels(fsys fs.FS) (*LevelSet, error) {
	levels, names, err := leveldata.LoadAllLevels(fsys, LevelsDir)
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	return &LevelSet{Names: names, Levels: levels}, nil
}

// LoadLevelsFrom loads levels from dir on disk, or the embedded levels when
// dir is empty.
func LoadLevelsFrom(dir string) (*LevelSet, error) {
	if dir == "" {
		return LoadLevels(assetFS)
	}
	return LoadLevels(os.DirFS(dir))
}

// MustLoadLevels loads the embedded levels and panics on error.
func MustLoadLevels() *LevelSet {
	set, err := LoadLevels(assetFS)
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return set
}
