package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/automoto/tilepatrol/assets"
	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/telemetry"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationRecordsEveryTick(t *testing.T) {
	var buf bytes.Buffer
	sim := &simulation{levels: assets.MustLoadLevels(), rec: telemetry.NewRecorder(&buf), dt: 1.0 / 60}
	sim.load(0)

	for i := 0; i < 30; i++ {
		sim.step([cfg.ActionCount]bool{})
	}

	assert.Equal(t, 30, sim.tick)
	assert.Equal(t, 30, sim.rec.Totals().Ticks)
	assert.NotZero(t, buf.Len())
}

func TestSimulationAdvancesOnFinish(t *testing.T) {
	sim := &simulation{levels: assets.MustLoadLevels(), dt: 1.0 / 60}
	sim.load(1)
	require.Equal(t, 1, sim.index)

	lvlEntry, ok := components.Level.First(sim.world)
	require.True(t, ok)
	components.Level.Get(lvlEntry).ReachedExit = true

	var jump [cfg.ActionCount]bool
	jump[cfg.ActionJump] = true
	sim.step(jump)

	// Past the last level the run wraps to the first.
	assert.Equal(t, 0, sim.index)
	lvlEntry, ok = components.Level.First(sim.world)
	require.True(t, ok)
	assert.False(t, components.Level.Get(lvlEntry).ReachedExit)
}

func TestSimulationSummarizesWithoutTrace(t *testing.T) {
	rec, err := telemetry.CreateRecorder("")
	require.NoError(t, err)
	sim := &simulation{levels: assets.MustLoadLevels(), rec: rec, dt: 1.0 / 60}
	sim.load(0)

	for i := 0; i < 600; i++ {
		sim.step([cfg.ActionCount]bool{})
	}

	require.Equal(t, 0, sim.index)
	summary := sim.rec.Summary()
	require.Len(t, summary, 3)
	for _, e := range summary {
		assert.Equal(t, 600, e.Samples)
	}
	assert.Equal(t, 600, sim.rec.Totals().Ticks)
	assert.Equal(t, 1800, sim.rec.Totals().Rows)
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(stopped)
	}()

	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	ev := <-events
	key, ok := ev.(*tcell.EventKey)
	require.True(t, ok)
	assert.Equal(t, 'a', key.Rune())

	// Nobody reads events any more; the next key must not wedge the poller.
	close(done)
	screen.InjectKey(tcell.KeyRune, 'b', tcell.ModNone)

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("event poller still blocked after done was closed")
	}
}
