package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/tilepatrol/components"
	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/fonts"
	"github.com/automoto/tilepatrol/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD draws the clock and death count, plus a banner when the player is
// dead or the level is over.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	lvlEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(lvlEntry)

	var player *components.PlayerData
	if playerEntry, ok := systems.PlayerEntry(e.World); ok {
		player = components.Player.Get(playerEntry)
	}

	face := fonts.HUD.Get()
	x := int(cfg.UI.HUDMargin)
	y := int(cfg.UI.HUDMargin + cfg.UI.HUDLineHeight)
	for _, line := range hudLines(lvl, player) {
		text.Draw(screen, line, face, x, y, cfg.White)
		y += int(cfg.UI.HUDLineHeight)
	}

	title, sub := Banner(lvl, player)
	if title == "" {
		return
	}
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, float32(h/2-cfg.UI.TitleFontSize*1.5), float32(w), float32(cfg.UI.TitleFontSize*3), cfg.BlackOverlay, false)

	titleFace := fonts.Title.Get()
	text.Draw(screen, title, titleFace, centerTextX(title, titleFace, w), int(h/2), bannerColor(lvl))
	if sub != "" {
		text.Draw(screen, sub, face, centerTextX(sub, face, w), int(h/2+cfg.UI.HUDLineHeight*1.5), cfg.White)
	}
}

func hudLines(lvl *components.LevelData, player *components.PlayerData) []string {
	name := ""
	if lvl.Level != nil {
		name = lvl.Level.Name
	}
	lines := []string{
		name,
		fmt.Sprintf("TIME %d", int(math.Ceil(lvl.TimeRemaining))),
	}
	if player != nil {
		lines = append(lines, fmt.Sprintf("DEATHS %d", player.Deaths))
	}
	if ls, ok := systems.Stats().Levels[name]; ok && ls.Completions > 0 {
		lines = append(lines, fmt.Sprintf("BEST %.2fs", ls.BestTime))
	}
	return lines
}

// Banner returns the centred message for the current state, or "" when
// play is under way.
func Banner(lvl *components.LevelData, player *components.PlayerData) (title, sub string) {
	switch {
	case lvl.ReachedExit:
		return "LEVEL COMPLETE", fmt.Sprintf("%.2fs - press jump to continue", lvl.Elapsed)
	case lvl.TimedOut:
		return "TIME UP", "press jump to try again"
	case player != nil && !player.Alive:
		if player.Cause == components.CauseFell {
			return "YOU FELL", ""
		}
		return "KILLED", ""
	}
	return "", ""
}

func bannerColor(lvl *components.LevelData) color.Color {
	if lvl.ReachedExit {
		return cfg.Green
	}
	return cfg.LightRed
}

func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
