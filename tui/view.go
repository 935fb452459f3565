// Package tui draws a level as a character grid in a terminal.
package tui

import (
	"fmt"
	"math"

	"github.com/automoto/tilepatrol/components"
	"github.com/automoto/tilepatrol/shared/leveldata"
	"github.com/automoto/tilepatrol/shared/patrol"
	"github.com/automoto/tilepatrol/systems"
	"github.com/automoto/tilepatrol/tags"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
)

// Glyphs. Tiles match the text grid format of leveldata.ParseGrid.
const (
	GlyphSolid        = '#'
	GlyphPlatform     = '-'
	GlyphExit         = 'E'
	GlyphPlayer       = '@'
	GlyphDeadPlayer   = 'x'
	GlyphEnemyLeft    = '<'
	GlyphEnemyRight   = '>'
	GlyphWaitingLeft  = '('
	GlyphWaitingRight = ')'
)

var (
	styleTile     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlatform = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleExit     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// View renders one world per frame onto a tcell screen, one cell per tile.
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Open creates and initialises the terminal screen.
func Open() (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialising screen: %w", err)
	}
	return NewView(screen), nil
}

func (v *View) Screen() tcell.Screen {
	return v.screen
}

// Close restores the terminal.
func (v *View) Close() {
	v.screen.Fini()
}

// Draw renders world and shows the frame.
func (v *View) Draw(world donburi.World) {
	v.screen.Clear()

	lvlEntry, ok := components.Level.First(world)
	if !ok {
		v.screen.Show()
		return
	}
	lvl := components.Level.Get(lvlEntry)
	if lvl.Level == nil {
		v.screen.Show()
		return
	}
	grid := lvl.Level.Grid

	v.drawTiles(grid)
	v.drawExits(grid, lvl.Level.Exits)

	tags.Enemy.Each(world, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		cx, cy := cellOf(grid, enemy.Position.X, enemy.Position.Y)
		v.screen.SetContent(cx, cy, enemyGlyph(enemy.Enemy), nil, styleEnemy)
	})

	deaths := 0
	if playerEntry, ok := systems.PlayerEntry(world); ok {
		player := components.Player.Get(playerEntry)
		deaths = player.Deaths
		x, y := components.Object.Get(playerEntry).Feet()
		cx, cy := cellOf(grid, x, y)
		glyph := GlyphPlayer
		if !player.Alive {
			glyph = GlyphDeadPlayer
		}
		v.screen.SetContent(cx, cy, glyph, nil, stylePlayer)
	}

	v.drawText(0, grid.Height, StatusLine(lvl, deaths))
	v.screen.Show()
}

func (v *View) drawTiles(grid *leveldata.Grid) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			switch grid.Classify(x, y) {
			case leveldata.Impassable:
				v.screen.SetContent(x, y, GlyphSolid, nil, styleTile)
			case leveldata.Platform:
				v.screen.SetContent(x, y, GlyphPlatform, nil, stylePlatform)
			}
		}
	}
}

func (v *View) drawExits(grid *leveldata.Grid, exits []leveldata.Rect) {
	for _, r := range exits {
		x0, y0 := cellOf(grid, r.X, r.Y+1)
		x1, y1 := cellOf(grid, r.X+r.W-1, r.Y+r.H)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				v.screen.SetContent(x, y, GlyphExit, nil, styleExit)
			}
		}
	}
}

func (v *View) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, styleStatus)
	}
}

// StatusLine is the line printed under the level.
func StatusLine(lvl *components.LevelData, deaths int) string {
	name := ""
	if lvl.Level != nil {
		name = lvl.Level.Name
	}
	s := fmt.Sprintf("%s  time %3.0f  deaths %d", name, math.Ceil(lvl.TimeRemaining), deaths)
	switch {
	case lvl.ReachedExit:
		s += "  LEVEL COMPLETE - space to continue"
	case lvl.TimedOut:
		s += "  TIME UP - space to retry"
	}
	return s
}

func enemyGlyph(e *patrol.Enemy) rune {
	switch {
	case e.Waiting() && e.Direction < 0:
		return GlyphWaitingLeft
	case e.Waiting():
		return GlyphWaitingRight
	case e.Direction < 0:
		return GlyphEnemyLeft
	}
	return GlyphEnemyRight
}

// cellOf maps a feet point to the tile that holds the body, the one just
// above the point.
func cellOf(grid *leveldata.Grid, x, y float64) (int, int) {
	cx := int(math.Floor(x / float64(grid.TileWidth)))
	cy := int(math.Floor((y - 1) / float64(grid.TileHeight)))
	return cx, cy
}
