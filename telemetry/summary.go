package telemetry

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EnemySummary describes one enemy's patrol over a run of trace rows.
type EnemySummary struct {
	Enemy     int
	Samples   int
	MinX      float64
	MaxX      float64
	MeanSpeed float64 // pixels per second, waiting ticks included
	Waiting   float64 // fraction of samples with a running wait timer
	Turns     int
	Kills     int
}

// Span is the horizontal distance the enemy covered.
func (s EnemySummary) Span() float64 {
	return s.MaxX - s.MinX
}

// Summarize groups rows by enemy and reduces each group. Rows are expected
// in tick order per enemy; speed samples with a non-positive time step are
// skipped.
func Summarize(rows []Row) []EnemySummary {
	byEnemy := make(map[int][]Row)
	for _, row := range rows {
		byEnemy[row.Enemy] = append(byEnemy[row.Enemy], row)
	}

	out := make([]EnemySummary, 0, len(byEnemy))
	for idx, group := range byEnemy {
		out = append(out, summarizeEnemy(idx, group))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Enemy < out[j].Enemy })
	return out
}

func summarizeEnemy(idx int, rows []Row) EnemySummary {
	s := EnemySummary{Enemy: idx, Samples: len(rows)}
	if len(rows) == 0 {
		return s
	}

	xs := make([]float64, len(rows))
	waiting := make([]float64, len(rows))
	for i, row := range rows {
		xs[i] = row.X
		if row.WaitTimer > 0 {
			waiting[i] = 1
		}
		if row.Turned {
			s.Turns++
		}
		if row.Killed {
			s.Kills++
		}
	}
	s.MinX = floats.Min(xs)
	s.MaxX = floats.Max(xs)
	s.Waiting = stat.Mean(waiting, nil)

	var speeds []float64
	for i := 1; i < len(rows); i++ {
		dt := rows[i].Time - rows[i-1].Time
		if dt <= 0 {
			continue
		}
		speeds = append(speeds, math.Abs(rows[i].X-rows[i-1].X)/dt)
	}
	if len(speeds) > 0 {
		s.MeanSpeed = stat.Mean(speeds, nil)
	}
	return s
}
