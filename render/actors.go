package render

import (
	"github.com/automoto/tilepatrol/components"
	"github.com/automoto/tilepatrol/systems"
	"github.com/automoto/tilepatrol/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawEnemies draws every enemy anchored bottom-centre on its position.
func DrawEnemies(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := cameraOffset(e.World, screen)
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		drawAnimated(screen, components.Animation.Get(entry), enemy.Position.X+ox, enemy.Position.Y+oy)
	})
}

// DrawPlayer draws the player. A dead player sinks by the death offset.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := systems.PlayerEntry(e.World)
	if !ok {
		return
	}
	ox, oy := cameraOffset(e.World, screen)
	x, y := components.Object.Get(playerEntry).Feet()
	if death := components.Death.Get(playerEntry); death.Active {
		y += death.Offset
	}
	drawAnimated(screen, components.Animation.Get(playerEntry), x+ox, y+oy)
}

func drawAnimated(screen *ebiten.Image, anim *components.AnimationData, feetX, feetY float64) {
	if anim == nil || anim.FrameWidth <= 0 || anim.FrameHeight <= 0 {
		return
	}
	img := frameImage(anim.SheetKey, anim.CurrentSheet, anim.Frame(), anim.FrameWidth, anim.FrameHeight)
	w, h := float64(anim.FrameWidth), float64(anim.FrameHeight)

	drawOp.GeoM.Reset()
	if anim.FlipX {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(w, 0)
	}
	drawOp.GeoM.Translate(feetX-w/2, feetY-h)
	screen.DrawImage(img, drawOp)
}
