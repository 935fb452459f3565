package systems

import (
	"github.com/automoto/tilepatrol/components"
	"github.com/yohamta/donburi"
)

func UpdateAnimations(world donburi.World, dt float64) {
	components.Animation.Each(world, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(dt)
		}
	})
}
