package components

import (
	"github.com/automoto/tilepatrol/assets/animations"
	"github.com/automoto/tilepatrol/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation
	SheetKey         string
	FrameWidth       int
	FrameHeight      int
	FlipX            bool
}

// SetAnimation switches to the animation for state, restarting it when it
// changes. States without an animation keep the current one.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return
	}
	anim, ok := a.Animations[state]
	if !ok {
		return
	}
	a.CurrentAnimation = anim
	a.CurrentSheet = state
	anim.Restart()
}

// Frame returns the current frame index, or 0 with no animation.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
