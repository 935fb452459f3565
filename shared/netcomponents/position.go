package netcomponents

import "github.com/yohamta/donburi"

// NetPositionData is an entity's feet point in world pixels.
type NetPositionData struct {
	X, Y float64
}

var NetPosition = donburi.NewComponentType[NetPositionData]()

func LerpNetPosition(from, to NetPositionData, t float64) *NetPositionData {
	return &NetPositionData{
		X: lerp(from.X, to.X, t),
		Y: lerp(from.Y, to.Y, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
