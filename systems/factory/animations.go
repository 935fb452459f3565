package factory

import (
	"github.com/automoto/tilepatrol/assets/animations"
	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player", "monsterA") which maps to a set of animation definitions in config.
func GenerateAnimations(key string, frameWidth, frameHeight int) *components.AnimationData {
	defs := cfg.CharacterAnimations(key)

	animData := &components.AnimationData{
		Animations:  make(map[cfg.StateID]*animations.Animation, len(defs)),
		SheetKey:    key,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
	}
	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.FrameTime)
	}
	animData.SetAnimation(cfg.Idle)

	return animData
}
