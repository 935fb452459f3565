package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/tilepatrol/assets"
	"github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/fonts"
	"github.com/automoto/tilepatrol/scenes"
	"github.com/automoto/tilepatrol/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.String("level", "", "Level to start on (empty = first)")
	assetsDir := flag.String("assets", "", "Directory holding a levels/ folder (empty = embedded levels)")
	configPath := flag.String("config", "", "YAML tuning overrides")
	watch := flag.Bool("watch", false, "Reload -config when it changes")
	debug := flag.Bool("debug", false, "Draw collision boxes and probed tiles (toggle with F1)")
	flag.Parse()

	if *configPath != "" {
		config.MustLoadOverrides(*configPath)
	}
	if *debug {
		config.Debug.DrawBounds = true
	}

	var watcher *config.Watcher
	if *watch && *configPath != "" {
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", *configPath, err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	levels, err := assets.LoadLevelsFrom(*assetsDir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	start := 0
	if *level != "" {
		if start = levels.Index(*level); start < 0 {
			log.Fatalf("Unknown level %q (have %v)", *level, levels.Names)
		}
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	if err := systems.InitPersistence("tilepatrol"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("tilepatrol")
	ebiten.SetTPS(config.C.TPS)

	game := &Game{scene: scenes.NewPlatformerScene(levels, start, watcher)}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
