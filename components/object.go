package components

import (
	"image"
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's box in whole world units, rounded like enemy
// bounds so the two can be compared directly.
func (o *ObjectData) Rect() image.Rectangle {
	x := int(math.RoundToEven(o.X))
	y := int(math.RoundToEven(o.Y))
	return image.Rect(x, y, x+int(math.RoundToEven(o.W)), y+int(math.RoundToEven(o.H)))
}

// Feet returns the point between the object's feet.
func (o *ObjectData) Feet() (x, y float64) {
	return o.X + o.W/2, o.Y + o.H
}

// PlaceFeet moves the object so its feet sit at x, y.
func (o *ObjectData) PlaceFeet(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
