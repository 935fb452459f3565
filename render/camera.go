// Package render draws the world with ebiten. It only reads the world.
package render

import (
	"math"

	"github.com/automoto/tilepatrol/components"
	"github.com/automoto/tilepatrol/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// cameraOffset returns what to add to world coordinates to get screen
// coordinates. A level smaller than the screen is centred, a larger one
// scrolls to keep the player in view.
func cameraOffset(world donburi.World, screen *ebiten.Image) (float64, float64) {
	lvlEntry, ok := components.Level.First(world)
	if !ok {
		return 0, 0
	}
	lvl := components.Level.Get(lvlEntry).Level
	if lvl == nil {
		return 0, 0
	}

	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	focusX, focusY := float64(lvl.MapWidth)/2, float64(lvl.MapHeight)/2
	if playerEntry, ok := systems.PlayerEntry(world); ok {
		focusX, focusY = components.Object.Get(playerEntry).Feet()
	}

	return axisOffset(focusX, sw, float64(lvl.MapWidth)), axisOffset(focusY, sh, float64(lvl.MapHeight))
}

func axisOffset(focus, view, size float64) float64 {
	if size <= view {
		return math.Floor((view - size) / 2)
	}
	left := math.Max(0, math.Min(focus-view/2, size-view))
	return -math.Floor(left)
}
