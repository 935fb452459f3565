package render

import (
	"image"
	"image/color"

	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugSolid    = color.RGBA{100, 100, 100, 255}
	debugPlatform = color.RGBA{200, 160, 60, 255}
	debugPlayer   = color.RGBA{0, 0, 255, 255}
	debugEnemy    = color.RGBA{255, 0, 0, 255}
	debugWall     = color.RGBA{255, 255, 0, 255}
	debugFloor    = color.RGBA{0, 255, 255, 255}
)

// DrawDebug outlines collision boxes and the two tiles each enemy probes.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBounds {
		return
	}
	ox, oy := cameraOffset(e.World, screen)

	if spaceEntry, ok := components.Space.First(e.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			c := debugPlayer
			if obj.HasTags(tags.ResolvSolid) {
				c = debugSolid
			} else if obj.HasTags(tags.ResolvPlatform) {
				c = debugPlatform
			}
			outline(screen, obj.X+ox, obj.Y+oy, obj.W, obj.H, c)
		}
	}

	lvlEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(lvlEntry).Level
	if lvl == nil {
		return
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		wx, wy, fx, fy := enemy.Lookahead(lvl.Grid)
		outlineRect(screen, lvl.Grid.Bounds(wx, wy), ox, oy, debugWall)
		outlineRect(screen, lvl.Grid.Bounds(fx, fy), ox, oy, debugFloor)
		outlineRect(screen, enemy.BoundingRectangle(), ox, oy, debugEnemy)
	})
}

func outlineRect(screen *ebiten.Image, r image.Rectangle, ox, oy float64, c color.Color) {
	outline(screen, float64(r.Min.X)+ox, float64(r.Min.Y)+oy, float64(r.Dx()), float64(r.Dy()), c)
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
