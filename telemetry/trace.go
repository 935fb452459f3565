// Package telemetry writes per-tick enemy traces as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/automoto/tilepatrol/components"
	"github.com/automoto/tilepatrol/tags"
	"github.com/gocarina/gocsv"
	"github.com/yohamta/donburi"
)

// Row is one enemy's state after a tick.
type Row struct {
	Tick      int     `csv:"tick"`
	Time      float64 `csv:"time"`
	Enemy     int     `csv:"enemy"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	Direction int     `csv:"direction"`
	WaitTimer float64 `csv:"wait_timer"`
	State     string  `csv:"state"`
	Turned    bool    `csv:"turned"`
	Killed    bool    `csv:"killed"`
}

// Totals summarises everything a Recorder has seen.
type Totals struct {
	Ticks int
	Rows  int
	Turns int
	Kills int
}

// Recorder keeps totals and row history for a run and, when it has an
// output, appends the rows to a CSV stream. A nil Recorder discards
// everything.
type Recorder struct {
	out           io.Writer
	file          *os.File
	headerWritten bool
	totals        Totals
	history       []Row
}

// NewRecorder writes to w. The caller owns w. A nil w keeps totals and
// history without writing CSV.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{out: w}
}

// CreateRecorder creates the file at path and writes to it. An empty path
// returns a Recorder without CSV output.
func CreateRecorder(path string) (*Recorder, error) {
	if path == "" {
		return NewRecorder(nil), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	return &Recorder{out: f, file: f}, nil
}

// Rows snapshots every enemy in world, ordered by spawn index.
func Rows(world donburi.World, tick int, t float64) []Row {
	var rows []Row
	tags.Enemy.Each(world, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		row := Row{
			Tick:      tick,
			Time:      t,
			Enemy:     enemy.Index,
			X:         enemy.Position.X,
			Y:         enemy.Position.Y,
			Direction: int(enemy.Direction),
			WaitTimer: enemy.WaitTimer,
			Turned:    enemy.Last.Turned,
			Killed:    enemy.Last.Killed,
		}
		if anim := components.Animation.Get(e); anim != nil {
			row.State = anim.CurrentSheet.String()
		}
		rows = append(rows, row)
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].Enemy < rows[j].Enemy })
	return rows
}

// Record writes the rows for one tick.
func (r *Recorder) Record(world donburi.World, tick int, t float64) error {
	if r == nil {
		return nil
	}

	rows := Rows(world, tick, t)
	r.history = append(r.history, rows...)
	r.totals.Ticks++
	r.totals.Rows += len(rows)
	for _, row := range rows {
		if row.Turned {
			r.totals.Turns++
		}
		if row.Killed {
			r.totals.Kills++
		}
	}
	if len(rows) == 0 || r.out == nil {
		return nil
	}

	if !r.headerWritten {
		if err := gocsv.Marshal(rows, r.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, r.out); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Totals returns the running counts.
func (r *Recorder) Totals() Totals {
	if r == nil {
		return Totals{}
	}
	return r.totals
}

// Summary reduces the rows recorded since the last ResetHistory.
func (r *Recorder) Summary() []EnemySummary {
	if r == nil {
		return nil
	}
	return Summarize(r.history)
}

// ResetHistory drops the rows kept for Summary. Call it when the level
// changes, since enemy indices restart with every map.
func (r *Recorder) ResetHistory() {
	if r == nil {
		return
	}
	r.history = r.history[:0]
}

// Close closes the trace file when the Recorder created it.
func (r *Recorder) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}
