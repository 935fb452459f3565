package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tilepatrol/assets"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/render"
	"github.com/automoto/tilepatrol/systems"
	"github.com/automoto/tilepatrol/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

// PlatformerScene plays the levels of a LevelSet in order.
type PlatformerScene struct {
	ecs     *ecs.ECS
	levels  *assets.LevelSet
	index   int
	watcher *cfg.Watcher
	once    sync.Once
}

// NewPlatformerScene starts at the index-th level. watcher may be nil.
func NewPlatformerScene(levels *assets.LevelSet, index int, watcher *cfg.Watcher) *PlatformerScene {
	return &PlatformerScene{levels: levels, index: index, watcher: watcher}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.LevelFinished(ps.ecs.World) {
		ps.index++
		ps.configure()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	lvl := ps.levels.At(ps.index)
	e := ecs.NewECS(factory.BuildWorld(lvl))

	e.AddSystem(ps.updateTuning)
	e.AddSystem(updateInput)
	e.AddSystem(step)

	e.AddRenderer(layerDefault, render.DrawLevel)
	e.AddRenderer(layerDefault, render.DrawEnemies)
	e.AddRenderer(layerDefault, render.DrawPlayer)
	e.AddRenderer(layerDefault, render.DrawDebug)
	e.AddRenderer(layerDefault, render.DrawHUD)

	ps.ecs = e
	log.Printf("[scene] playing %s", lvl.Name)
}

func (ps *PlatformerScene) updateTuning(e *ecs.ECS) {
	if ps.watcher == nil {
		return
	}
	t, ok, err := ps.watcher.Poll()
	if err != nil {
		log.Printf("[config] reload failed: %v", err)
		return
	}
	if !ok {
		return
	}
	systems.ApplyTuning(e.World, t)
	log.Printf("[config] tuning reloaded")
}

func updateInput(e *ecs.ECS) {
	if debugToggled() {
		cfg.Debug.DrawBounds = !cfg.Debug.DrawBounds
	}
	systems.SetInput(e.World, readActions())
}

func step(e *ecs.ECS) {
	systems.Step(e.World, 1/float64(ebiten.TPS()))
}
