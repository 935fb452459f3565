package render

import (
	"image"
	"image/color"

	cfg "github.com/automoto/tilepatrol/config"
	"github.com/automoto/tilepatrol/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Characters are drawn procedurally. Each frame is generated on first use
// and cached.
type frameKey struct {
	sheet string
	state cfg.StateID
	frame int
	w, h  int
}

var frameCache = map[frameKey]*ebiten.Image{}

var sheetColors = map[string]color.RGBA{
	"player":   cfg.LightBlue,
	"monsterA": cfg.LightRed,
	"monsterB": cfg.Purple,
}

func frameImage(sheet string, state cfg.StateID, frame, w, h int) *ebiten.Image {
	key := frameKey{sheet: sheet, state: state, frame: frame, w: w, h: h}
	if img, ok := frameCache[key]; ok {
		return img
	}
	img := ebiten.NewImage(w, h)
	paintFrame(img, key)
	frameCache[key] = img
	return img
}

func paintFrame(img *ebiten.Image, k frameKey) {
	body := image.Rect(0, 0, k.w, k.h)
	// Enemy art faces left, the player faces right.
	facesLeft := true
	if k.sheet == "player" {
		facesLeft = false
	} else {
		body = gamemath.LocalBoundsFromFrame(k.w, k.h)
	}

	c, ok := sheetColors[k.sheet]
	if !ok {
		c = cfg.Magenta
	}

	legH := body.Dy() / 5
	top := body.Min.Y
	switch k.state {
	case cfg.Idle:
		top += k.frame % 2
	case cfg.Jump:
		legH /= 2
	case cfg.Die:
		top += body.Dy() * (k.frame + 1) / 8
	}
	torso := image.Rect(body.Min.X, top, body.Max.X, body.Max.Y-legH)
	fill(img, torso, c)

	// Legs
	legW := body.Dx() / 3
	stride := 0
	if k.state == cfg.Running {
		stride = (k.frame%4 - 1) * body.Dx() / 8
	}
	fill(img, image.Rect(body.Min.X+stride, body.Max.Y-legH, body.Min.X+stride+legW, body.Max.Y), c)
	fill(img, image.Rect(body.Max.X-legW-stride, body.Max.Y-legH, body.Max.X-stride, body.Max.Y), c)

	if k.state == cfg.Die {
		return
	}
	eye := max(2, body.Dx()/6)
	ex := body.Max.X - eye*2
	if facesLeft {
		ex = body.Min.X + eye
	}
	fill(img, image.Rect(ex, top+eye, ex+eye, top+eye*2), cfg.White)
}

func fill(img *ebiten.Image, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	vector.FillRect(img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}
