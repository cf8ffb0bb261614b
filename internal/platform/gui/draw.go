package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/zombie-queue/internal/core"
	"github.com/vovakirdan/zombie-queue/internal/games/zombies"
)

// Palette
var (
	colorWhite    = color.RGBA{255, 255, 255, 255}
	colorGreen    = color.RGBA{0, 255, 0, 255}
	colorYellow   = color.RGBA{255, 255, 0, 255}
	colorRed      = color.RGBA{255, 0, 0, 255}
	colorBlack    = color.RGBA{0, 0, 0, 255}
	colorDarkGrey = color.RGBA{25, 25, 25, 255}
	colorMenuBg   = color.RGBA{20, 20, 20, 255}
	colorPlayer   = color.RGBA{70, 130, 220, 255}
	colorZombie   = color.RGBA{60, 140, 60, 255}
)

// HP bar geometry in play-area units
const (
	hpBarHeight = 6
	hpBarOffset = 8
)

var face font.Face = basicfont.Face7x13

func tierColor(t zombies.HealthTier) color.Color {
	switch t {
	case zombies.TierHealthy:
		return colorGreen
	case zombies.TierWounded:
		return colorYellow
	default:
		return colorRed
	}
}

func fillRect(dst *ebiten.Image, r core.RectF, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// drawSprite draws img stretched over r, or a filled rectangle when img is nil.
func drawSprite(dst, img *ebiten.Image, r core.RectF, fallback color.Color) {
	if img == nil {
		fillRect(dst, r, fallback)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	dst.DrawImage(img, op)
}

// drawHPBar draws a red bar above the enemy with a tier-colored fill.
func drawHPBar(dst *ebiten.Image, e zombies.EnemyView) {
	bar := core.NewRectF(e.Rect.X, e.Rect.Y-hpBarOffset, e.Rect.W, hpBarHeight)
	fillRect(dst, bar, colorRed)
	bar.W *= e.HealthRatio()
	if bar.W > 0 {
		fillRect(dst, bar, tierColor(e.HealthTier()))
	}
}

// textWidth returns the unscaled pixel width of s.
func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// drawText draws s with its top-left corner at (x, y), magnified by scale.
func drawText(dst *ebiten.Image, s string, x, y, scale int, clr color.Color) {
	if scale <= 1 {
		text.Draw(dst, s, face, x, y+face.Metrics().Ascent.Ceil(), clr)
		return
	}

	lineH := face.Metrics().Height.Ceil()
	tmp := ebiten.NewImage(max(textWidth(s), 1), lineH)
	defer tmp.Deallocate()
	text.Draw(tmp, s, face, 0, face.Metrics().Ascent.Ceil(), clr)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(tmp, op)
}

// drawTextCentered draws s centered on (cx, cy).
func drawTextCentered(dst *ebiten.Image, s string, cx, cy, scale int, clr color.Color) {
	w := textWidth(s) * scale
	h := face.Metrics().Height.Ceil() * scale
	drawText(dst, s, cx-w/2, cy-h/2, scale, clr)
}
