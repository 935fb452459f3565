package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData holds per-second speeds and the tuning they integrate with.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Acceleration float64
	Gravity      float64
	Friction     float64
	MaxSpeed     float64
	MaxFallSpeed float64
	OnGround     bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
