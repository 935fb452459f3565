package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/automoto/tilepatrol/assets"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/systems"
	"github.com/automoto/tilepatrol/systems/factory"
	"github.com/automoto/tilepatrol/telemetry"
	"github.com/automoto/tilepatrol/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
)

type options struct {
	ticks     int
	dt        float64
	level     string
	assetsDir string
	trace     string
	useTUI    bool
}

func main() {
	opts := options{}
	flag.IntVar(&opts.ticks, "ticks", 600, "Ticks to simulate (0 = until quit, -tui only)")
	flag.Float64Var(&opts.dt, "dt", 1.0/60, "Seconds per tick")
	flag.StringVar(&opts.level, "level", "", "Level to run (empty = first)")
	flag.StringVar(&opts.assetsDir, "assets", "", "Directory holding a levels/ folder (empty = embedded levels)")
	flag.StringVar(&opts.trace, "trace", "", "Write a per-tick CSV trace to this file")
	flag.BoolVar(&opts.useTUI, "tui", false, "Show the level in the terminal and read arrow keys")
	configPath := flag.String("config", "", "YAML tuning overrides")
	logPatrol := flag.Bool("log-patrol", false, "Log enemy turns and kills")
	flag.Parse()

	if *configPath != "" {
		cfg.MustLoadOverrides(*configPath)
	}
	if *logPatrol {
		cfg.Debug.LogPatrol = true
	}

	if opts.dt <= 0 {
		log.Fatalf("-dt must be positive, got %v", opts.dt)
	}
	if opts.ticks <= 0 && !opts.useTUI {
		log.Fatalf("-ticks must be positive without -tui")
	}

	levels, err := assets.LoadLevelsFrom(opts.assetsDir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	start := 0
	if opts.level != "" {
		if start = levels.Index(opts.level); start < 0 {
			log.Fatalf("Unknown level %q (have %v)", opts.level, levels.Names)
		}
	}

	rec, err := telemetry.CreateRecorder(opts.trace)
	if err != nil {
		log.Fatalf("Failed to open trace: %v", err)
	}
	defer rec.Close()

	sim := &simulation{levels: levels, index: start, rec: rec, dt: opts.dt}
	sim.load(start)

	if opts.useTUI {
		// Log lines would tear the terminal frame.
		log.SetOutput(io.Discard)
		err := runTUI(sim, opts.ticks)
		log.SetOutput(os.Stderr)
		if err != nil {
			log.Printf("Terminal error: %v", err)
			os.Exit(1)
		}
	} else {
		for i := 0; i < opts.ticks; i++ {
			sim.step([cfg.ActionCount]bool{})
		}
	}

	sim.logSummary()
	t := rec.Totals()
	log.Printf("Simulated %d ticks (%.2fs) on %s: %d turns, %d kills",
		sim.tick, float64(sim.tick)*opts.dt, levels.Names[sim.index], t.Turns, t.Kills)
}

type simulation struct {
	levels *assets.LevelSet
	index  int
	world  donburi.World
	rec    *telemetry.Recorder
	dt     float64
	tick   int
}

func (s *simulation) load(i int) {
	n := s.levels.Len()
	s.index = ((i % n) + n) % n
	s.world = factory.BuildWorld(s.levels.At(s.index))
}

func (s *simulation) step(actions [cfg.ActionCount]bool) {
	systems.SetInput(s.world, actions)
	systems.Step(s.world, s.dt)
	s.tick++

	if err := s.rec.Record(s.world, s.tick, float64(s.tick)*s.dt); err != nil {
		log.Printf("[trace] %v", err)
	}
	if systems.LevelFinished(s.world) {
		s.logSummary()
		s.load(s.index + 1)
	}
}

// logSummary reports each enemy's patrol on the current level and starts a
// fresh history for the next one.
func (s *simulation) logSummary() {
	for _, e := range s.rec.Summary() {
		log.Printf("[patrol] %s enemy %d: x %.0f..%.0f (span %.0f), mean speed %.1f, waiting %.0f%%, %d turns, %d kills",
			s.levels.Names[s.index], e.Enemy, e.MinX, e.MaxX, e.Span(), e.MeanSpeed, e.Waiting*100, e.Turns, e.Kills)
	}
	s.rec.ResetHistory()
}

func runTUI(sim *simulation, ticks int) error {
	view, err := tui.Open()
	if err != nil {
		return err
	}
	defer view.Close()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(view.Screen(), events, done)

	ticker := time.NewTicker(time.Duration(sim.dt * float64(time.Second)))
	defer ticker.Stop()

	var input tui.Input
	for ticks <= 0 || sim.tick < ticks {
		select {
		case ev := <-events:
			input.HandleEvent(ev)
			if input.Quit() {
				return nil
			}
		case <-ticker.C:
			sim.step(input.Actions())
			view.Draw(sim.world)
		}
	}
	return nil
}

// pollEvents forwards screen events until the screen is finalised or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
