package config

type AnimationDef struct {
	First     int
	Last      int
	Step      int
	FrameTime float64 // seconds each frame stays on screen
}

// CharacterAnimations returns the animation definitions for a character key
// (e.g., "monsterA", "player"). Enemy timings come from Enemy so tuning
// overrides apply to newly created enemies.
func CharacterAnimations(key string) map[StateID]AnimationDef {
	if key == "player" {
		return map[StateID]AnimationDef{
			Idle:    {First: 0, Last: 3, Step: 1, FrameTime: 0.15},
			Running: {First: 0, Last: 7, Step: 1, FrameTime: 0.08},
			Jump:    {First: 0, Last: 1, Step: 1, FrameTime: 0.2},
			Die:     {First: 0, Last: 5, Step: 1, FrameTime: Player.DeathDuration / 6},
		}
	}
	return map[StateID]AnimationDef{
		Idle:    {First: 0, Last: 3, Step: 1, FrameTime: Enemy.IdleFrameTime},
		Running: {First: 0, Last: 7, Step: 1, FrameTime: Enemy.RunFrameTime},
	}
}
