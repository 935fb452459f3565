package telemetry

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/tilepatrol/assets"
	"github.com/automoto/tilepatrol/systems"
	"github.com/automoto/tilepatrol/systems/factory"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderWritesOneHeader(t *testing.T) {
	world := factory.BuildWorld(assets.MustLoadLevels().At(0))
	var buf bytes.Buffer
	rec := NewRecorder(&buf)

	const dt = 1.0 / 60
	for tick := 1; tick <= 4; tick++ {
		systems.Step(world, dt)
		require.NoError(t, rec.Record(world, tick, float64(tick)*dt))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+4*3)
	assert.Equal(t, "tick,time,enemy,x,y,direction,wait_timer,state,turned,killed", lines[0])
	assert.Equal(t, 1, strings.Count(buf.String(), "tick,"))

	var rows []Row
	require.NoError(t, gocsv.UnmarshalBytes(buf.Bytes(), &rows))
	require.Len(t, rows, 12)
	for i, row := range rows {
		assert.Equal(t, i/3+1, row.Tick)
		assert.Equal(t, i%3, row.Enemy)
	}

	totals := rec.Totals()
	assert.Equal(t, 4, totals.Ticks)
	assert.Equal(t, 12, totals.Rows)
	assert.Equal(t, 0, totals.Kills)
}

func TestRowsFollowEnemies(t *testing.T) {
	world := factory.BuildWorld(assets.MustLoadLevels().At(0))
	systems.Step(world, 0.1)

	rows := Rows(world, 1, 0.1)
	require.Len(t, rows, 3)
	assert.InDelta(t, 320, rows[0].Y, 1e-9)
	assert.Equal(t, "run", rows[0].State)
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder

	world := factory.BuildWorld(assets.MustLoadLevels().At(0))
	assert.NoError(t, rec.Record(world, 1, 0))
	assert.Equal(t, Totals{}, rec.Totals())
	assert.NoError(t, rec.Close())
}

func TestRecorderWithoutOutputCounts(t *testing.T) {
	rec, err := CreateRecorder("")
	require.NoError(t, err)
	require.NotNil(t, rec)

	world := factory.BuildWorld(assets.MustLoadLevels().At(0))
	const dt = 1.0 / 60
	for tick := 1; tick <= 5; tick++ {
		systems.Step(world, dt)
		require.NoError(t, rec.Record(world, tick, float64(tick)*dt))
	}

	assert.Equal(t, 5, rec.Totals().Ticks)
	assert.Equal(t, 15, rec.Totals().Rows)
	assert.Len(t, rec.Summary(), 3)
	assert.NoError(t, rec.Close())
}

func TestCreateRecorderWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	rec, err := CreateRecorder(path)
	require.NoError(t, err)

	world := factory.BuildWorld(assets.MustLoadLevels().At(0))
	require.NoError(t, rec.Record(world, 0, 0))
	require.NoError(t, rec.Close())

	_, err = CreateRecorder(filepath.Join(t.TempDir(), "missing", "trace.csv"))
	assert.Error(t, err)
}
