package render

import (
	"image/color"

	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var exitColor = color.RGBA{R: 0, G: 200, B: 80, A: 120}

// DrawLevel draws the tiles and the exits.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	lvlEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(lvlEntry).Level
	if lvl == nil {
		return
	}
	ox, oy := cameraOffset(e.World, screen)

	g := lvl.Grid
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			r := g.Bounds(x, y)
			fx, fy := float32(float64(r.Min.X)+ox), float32(float64(r.Min.Y)+oy)
			switch g.Classify(x, y) {
			case leveldata.Impassable:
				vector.FillRect(screen, fx, fy, float32(r.Dx()), float32(r.Dy()), cfg.Stone, false)
			case leveldata.Platform:
				vector.FillRect(screen, fx, fy, float32(r.Dx()), float32(r.Dy())/4, cfg.Plank, false)
			}
		}
	}

	for _, ex := range lvl.Exits {
		vector.FillRect(screen, float32(ex.X+ox), float32(ex.Y+oy), float32(ex.W), float32(ex.H), exitColor, false)
	}
}
