package zombies

import (
	"fmt"

	"github.com/vovakirdan/zombie-queue/internal/config"
	"github.com/vovakirdan/zombie-queue/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerChar     = '█'
	ZombieChar     = 'Z'
	ProjectileChar = '|'
	HPBarChar      = '▀'
)

// Minimum terminal size for a readable play area
const (
	minScreenW = 60
	minScreenH = 16
)

// tierColors maps enemy health tiers to cell colors.
var tierColors = map[HealthTier]core.Color{
	TierHealthy:  core.ColorGreen,
	TierWounded:  core.ColorYellow,
	TierCritical: core.ColorRed,
}

// Game adapts a Session to a frame-stepped terminal frontend.
// The start menu is owned by the frontend, so Reset starts play directly.
type Game struct {
	session *Session
	last    TickResult
}

// New creates a game for the given configuration.
func New(cfg config.ZombiesConfig) (*Game, error) {
	s, err := NewSession(cfg, 0)
	if err != nil {
		return nil, err
	}
	return &Game{session: s}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "zombies"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Zombie Survival Queue"
}

// Reset starts a fresh run at level 1 using the runtime seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.session.Reseed(runtime.Seed)
	_ = g.session.ChooseMenu(MenuStart) // a reset session is always in the menu
	g.last = g.session.result(TickLevelAnnounce)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.last = g.session.RunTick(Input{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Fire:  in.Has(core.ActionFire),
	})
	return core.StepResult{State: g.State()}
}

// Quit ends the run at the next Step.
func (g *Game) Quit() {
	g.session.Quit()
}

// Last returns the result of the most recent tick.
func (g *Game) Last() TickResult {
	return g.last
}

// Result returns the session outcome so far.
func (g *Game) Result() SessionResult {
	return g.session.Result()
}

// State returns the coarse game state.
func (g *Game) State() core.GameState {
	snap := &g.last.Snapshot
	return core.GameState{
		Score:    snap.Kills,
		Level:    snap.Level,
		Status:   snap.Phase.String(),
		GameOver: snap.Phase == PhaseWon || snap.Phase == PhaseLost,
		Won:      snap.Phase == PhaseWon,
	}
}

// Render draws the last tick into the screen buffer.
// Row 0 holds the HUD; the rest is a bordered view of the play area scaled to fit.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()
	w, h := screen.Width(), screen.Height()
	if w < minScreenW || h < minScreenH {
		screen.DrawTextCentered(h/2, "Terminal too small", core.ColorRed)
		screen.DrawTextCentered(h/2+1, fmt.Sprintf("need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	snap := &g.last.Snapshot
	renderHUD(screen, snap)

	screen.DrawBox(core.NewRect(0, 1, w, h-1), core.ColorGray)
	vp := newViewport(core.NewRect(1, 2, w-2, h-3), snap.Width, snap.Height)

	switch snap.Phase {
	case PhasePlaying:
		renderField(screen, vp, snap)
	case PhaseAnnounce:
		renderBanner(screen, vp, snap.Banner(), core.ColorBrightGreen, "")
	case PhaseCleared:
		renderBanner(screen, vp, snap.Banner(), core.ColorBrightYellow, "")
	case PhaseWon:
		renderBanner(screen, vp, snap.Banner(), core.ColorBrightGreen, "R: play again  B: menu  Q: quit")
	case PhaseLost:
		renderBanner(screen, vp, snap.Banner(), core.ColorBrightRed, "R: try again  B: menu  Q: quit")
	}
}

func renderHUD(screen *core.Screen, snap *Snapshot) {
	hpColor := core.ColorWhite
	if snap.PlayerMaxHealth > 0 {
		ratio := float64(snap.PlayerHealth) / float64(snap.PlayerMaxHealth)
		hpColor = tierColors[TierFor(ratio)]
	}
	screen.DrawTextColor(1, 0, fmt.Sprintf("HP: %d", snap.PlayerHealth), hpColor)
	level := snap.Level
	if snap.Phase == PhaseWon {
		level = snap.ClearedLevel
	}
	screen.DrawTextColor(12, 0, fmt.Sprintf("Level: %d", level), core.ColorWhite)
	screen.DrawTextColor(24, 0, fmt.Sprintf("Zombies in Queue: %d", snap.QueueLen), core.ColorWhite)

	kills := fmt.Sprintf("Kills: %d", snap.Kills)
	screen.DrawTextColor(screen.Width()-len(kills)-1, 0, kills, core.ColorGray)
}

func renderField(screen *core.Screen, vp viewport, snap *Snapshot) {
	for _, e := range snap.Enemies {
		cells := vp.cells(e.Rect)
		color := tierColors[e.HealthTier()]
		vp.fill(screen, cells, ZombieChar, color)

		// HP bar on the row above: red background, tier-colored fill
		bar := core.NewRect(cells.X, cells.Y-1, cells.W, 1)
		filled := int(float64(cells.W)*e.HealthRatio() + 0.5)
		vp.fill(screen, bar, HPBarChar, core.ColorRed)
		vp.fill(screen, core.NewRect(bar.X, bar.Y, filled, 1), HPBarChar, color)
	}

	for _, p := range snap.Projectiles {
		vp.fill(screen, vp.cells(p), ProjectileChar, core.ColorBrightYellow)
	}

	vp.fill(screen, vp.cells(snap.Player), PlayerChar, core.ColorWhite)
}

func renderBanner(screen *core.Screen, vp viewport, text string, c core.Color, hint string) {
	y := vp.field.Y + vp.field.H/2
	screen.DrawTextCentered(y, text, c)
	if hint != "" {
		screen.DrawTextCentered(y+2, hint, core.ColorGray)
	}
}

// viewport maps play-area units onto a cell rectangle.
type viewport struct {
	field        core.Rect
	unitW, unitH float64
}

func newViewport(field core.Rect, playW, playH int) viewport {
	return viewport{
		field: field,
		unitW: float64(playW) / float64(max(field.W, 1)),
		unitH: float64(playH) / float64(max(field.H, 1)),
	}
}

// cells returns the unclipped cell rectangle covering r.
func (v viewport) cells(r core.RectF) core.Rect {
	c := r.Scale(v.unitW, v.unitH)
	c.X += v.field.X
	c.Y += v.field.Y
	return c
}

// fill draws r clipped to the field.
func (v viewport) fill(screen *core.Screen, r core.Rect, ch rune, c core.Color) {
	clipped := r.Intersect(v.field)
	if clipped.Empty() {
		return
	}
	screen.DrawRect(clipped, ch, c)
}
