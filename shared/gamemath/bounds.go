package gamemath

import (
	"image"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Character sprites use a collision box narrower and shorter than the frame,
// sitting on the frame's bottom edge.
const (
	BoundsWidthScale  = 0.35
	BoundsHeightScale = 0.7
)

// TileCoord converts a world coordinate into a tile index. Floor division keeps
// negative coordinates in the tile to their left/top.
func TileCoord(world float64, tileSize int) int {
	return int(math.Floor(world / float64(tileSize)))
}

// LocalBoundsFromFrame returns a character's collision box relative to the
// top-left of a frameW x frameH sprite frame. Both dimensions scale with the
// frame width.
func LocalBoundsFromFrame(frameW, frameH int) image.Rectangle {
	width := int(float64(frameW) * BoundsWidthScale)
	left := (frameW - width) / 2
	height := int(float64(frameW) * BoundsHeightScale)
	top := frameH - height
	return image.Rect(left, top, left+width, top+height)
}

// BottomCenter is the draw origin of a character frame: feet in the middle.
func BottomCenter(frameW, frameH int) dmath.Vec2 {
	return dmath.Vec2{X: float64(frameW) / 2, Y: float64(frameH)}
}

// BoundingRectangle places local bounds in world space for a sprite drawn at
// pos with the given origin. Rounding is half-to-even.
func BoundingRectangle(pos, origin dmath.Vec2, local image.Rectangle) image.Rectangle {
	left := int(math.RoundToEven(pos.X-origin.X)) + local.Min.X
	top := int(math.RoundToEven(pos.Y-origin.Y)) + local.Min.Y
	return image.Rect(left, top, left+local.Dx(), top+local.Dy())
}

// Overlaps reports whether two boxes share interior area. Touching edges do
// not count.
func Overlaps(a, b image.Rectangle) bool {
	return !(a.Max.X <= b.Min.X || a.Min.X >= b.Max.X ||
		a.Min.Y >= b.Max.Y || a.Max.Y <= b.Min.Y)
}
