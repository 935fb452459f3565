package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const statsKey = "stats"

// LevelStats is the saved record for one level.
type LevelStats struct {
	Deaths      int     `json:"deaths"`
	Completions int     `json:"completions"`
	BestTime    float64 `json:"bestTime"` // seconds, meaningful once Completions > 0
}

// SavedStats represents the run statistics stored on disk
type SavedStats struct {
	Deaths int                    `json:"deaths"`
	Levels map[string]*LevelStats `json:"levels"`
}

func newStats() *SavedStats {
	return &SavedStats{Levels: make(map[string]*LevelStats)}
}

func (s *SavedStats) level(name string) *LevelStats {
	ls, ok := s.Levels[name]
	if !ok {
		ls = &LevelStats{}
		s.Levels[name] = ls
	}
	return ls
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// stats is only touched from the goroutine that steps the world.
var stats = newStats()

// InitPersistence opens the gdata store and loads saved stats. Without it
// stats are kept in memory only.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open stats store: %w", err)
	}
	gdataManager = m
	gdataInitialized = true

	if saved, err := LoadStats(); err == nil && saved != nil {
		stats = saved
	}
	return nil
}

// LoadStats loads stats from disk. It returns nil, nil when nothing is saved.
func LoadStats() (*SavedStats, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(statsKey)
	if err != nil {
		log.Printf("Warning: Could not load stats: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	saved := newStats()
	if err := json.Unmarshal(data, saved); err != nil {
		log.Printf("Warning: Could not parse saved stats: %v", err)
		return nil, err
	}
	if saved.Levels == nil {
		saved.Levels = make(map[string]*LevelStats)
	}
	return saved, nil
}

// SaveStats writes the current stats to disk.
func SaveStats() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(stats)
	if err != nil {
		log.Printf("Warning: Could not serialize stats: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(statsKey, data); err != nil {
		log.Printf("Warning: Could not save stats: %v", err)
		return err
	}
	return nil
}

// Stats returns the live statistics.
func Stats() *SavedStats {
	return stats
}

// RecordDeath counts a death on the named level.
func RecordDeath(level string) {
	stats.Deaths++
	stats.level(level).Deaths++
	_ = SaveStats()
}

// RecordExit counts a completion and reports whether seconds is a new best.
func RecordExit(level string, seconds float64) bool {
	ls := stats.level(level)
	ls.Completions++
	best := ls.Completions == 1 || seconds < ls.BestTime
	if best {
		ls.BestTime = seconds
	}
	_ = SaveStats()
	return best
}
