// Package gui runs a session in a desktop window using Ebitengine.
package gui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/zombie-queue/internal/games/zombies"
)

// Menu button geometry
const (
	buttonW    = 200
	buttonH    = 60
	buttonStep = 100
)

const windowTitle = "Zombie Survival Queue"

// button is a clickable start menu entry.
type button struct {
	choice zombies.MenuChoice
	rect   image.Rectangle
	color  color.Color
}

// menuButtons lays out START GAME and EXIT centered below the middle of the window.
func menuButtons(width, height int) []button {
	x := width/2 - buttonW/2
	y := height / 2
	return []button{
		{zombies.MenuStart, image.Rect(x, y, x+buttonW, y+buttonH), colorGreen},
		{zombies.MenuExit, image.Rect(x, y+buttonStep, x+buttonW, y+buttonStep+buttonH), colorRed},
	}
}

// Window is the ebiten.Game driving one session.
type Window struct {
	session *zombies.Session
	sprites *Sprites
	logger  *log.Logger

	width, height int
	buttons       []button
	hover         int // Index of the hovered button, -1 for none

	last     zombies.TickResult
	holdLeft int // Frames left on the final message
	holding  bool
	done     bool
}

// NewWindow creates a window for the session. sprites may be nil.
func NewWindow(session *zombies.Session, sprites *Sprites, logger *log.Logger) *Window {
	cfg := session.Config()
	w := &Window{
		session: session,
		sprites: sprites,
		logger:  logger,
		width:   cfg.PlayArea.Width,
		height:  cfg.PlayArea.Height,
		hover:   -1,
	}
	w.buttons = menuButtons(w.width, w.height)
	w.last = zombies.TickResult{Kind: zombies.TickMenu, Snapshot: session.Snapshot()}
	return w
}

// Update advances the session by one tick.
func (w *Window) Update() error {
	if w.done {
		return ebiten.Termination
	}

	if w.session.Phase() == zombies.PhaseMenu {
		w.updateMenu()
		return nil
	}

	if w.holding {
		w.holdLeft--
		if w.holdLeft <= 0 || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			w.done = true
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.session.Quit()
	}

	prev := w.last
	w.last = w.session.RunTick(pollInput())
	w.logTransition(prev, w.last)

	switch w.last.Kind {
	case zombies.TickWon, zombies.TickLost:
		w.holding = true
		w.holdLeft = w.session.Config().Timing.GameOverTicks
	case zombies.TickExited:
		w.done = true
	}
	return nil
}

func (w *Window) updateMenu() {
	cx, cy := ebiten.CursorPosition()
	cursor := image.Pt(cx, cy)

	w.hover = -1
	for i, b := range w.buttons {
		if cursor.In(b.rect) {
			w.hover = i
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.choose(zombies.MenuExit)
		return
	}
	if w.hover >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.choose(w.buttons[w.hover].choice)
	}
}

func (w *Window) choose(choice zombies.MenuChoice) {
	if err := w.session.ChooseMenu(choice); err != nil {
		w.logger.Error("menu choice rejected", "choice", choice, "err", err)
		return
	}
	w.logger.Info("menu choice", "choice", choice)
	if choice == zombies.MenuExit {
		w.done = true
		return
	}
	w.last = zombies.TickResult{Kind: zombies.TickLevelAnnounce, Level: 1, Snapshot: w.session.Snapshot()}
}

// pollInput reads held keys. Arrows and WASD move, space fires.
func pollInput() zombies.Input {
	return zombies.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (w *Window) logTransition(prev, cur zombies.TickResult) {
	ps, cs := &prev.Snapshot, &cur.Snapshot
	if ps.Phase == cs.Phase && ps.Level == cs.Level {
		return
	}
	switch cs.Phase {
	case zombies.PhaseAnnounce:
		w.logger.Info("level announce", "level", cs.Level)
	case zombies.PhaseCleared:
		w.logger.Info("level cleared", "level", cs.ClearedLevel, "kills", cs.Kills)
	case zombies.PhaseWon:
		w.logger.Info("game won", "kills", cs.Kills, "ticks", cs.Tick)
	case zombies.PhaseLost:
		w.logger.Info("game lost", "level", cs.Level, "kills", cs.Kills, "ticks", cs.Tick)
	default:
		w.logger.Debug("phase change", "from", ps.Phase, "to", cs.Phase, "level", cs.Level)
	}
}

// Draw renders the last tick.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.session.Phase() == zombies.PhaseMenu {
		w.drawMenu(screen)
		return
	}

	snap := &w.last.Snapshot
	screen.Fill(colorBlack)

	switch snap.Phase {
	case zombies.PhasePlaying:
		w.drawField(screen, snap)
		w.drawHUD(screen, snap)
	case zombies.PhaseAnnounce, zombies.PhaseWon:
		w.drawBanner(screen, snap.Banner(), colorGreen)
	case zombies.PhaseCleared:
		w.drawBanner(screen, snap.Banner(), colorYellow)
	case zombies.PhaseLost:
		w.drawBanner(screen, snap.Banner(), colorRed)
	}
}

func (w *Window) drawMenu(screen *ebiten.Image) {
	screen.Fill(colorMenuBg)
	drawTextCentered(screen, windowTitle, w.width/2, w.height/4, 4, colorGreen)

	for i, b := range w.buttons {
		clr := b.color
		if i == w.hover {
			clr = colorYellow
		}
		r := b.rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
		c := r.Min.Add(r.Max).Div(2)
		drawTextCentered(screen, b.choice.String(), c.X, c.Y, 2, colorBlack)
	}
}

func (w *Window) drawField(screen *ebiten.Image, snap *zombies.Snapshot) {
	var playerImg, zombieImg *ebiten.Image
	if w.sprites != nil {
		playerImg, zombieImg = w.sprites.Player, w.sprites.Zombie
	}

	drawSprite(screen, playerImg, snap.Player, colorPlayer)
	for _, p := range snap.Projectiles {
		fillRect(screen, p, colorWhite)
	}
	for _, e := range snap.Enemies {
		drawSprite(screen, zombieImg, e.Rect, colorZombie)
		drawHPBar(screen, e)
	}
}

func (w *Window) drawHUD(screen *ebiten.Image, snap *zombies.Snapshot) {
	drawText(screen, fmt.Sprintf("HP: %d", snap.PlayerHealth), 10, 10, 2, colorWhite)
	drawText(screen, fmt.Sprintf("Level: %d", snap.Level), 10, 40, 2, colorWhite)
	drawText(screen, fmt.Sprintf("Zombies in Queue: %d", snap.QueueLen), 10, 70, 2, colorWhite)
}

func (w *Window) drawBanner(screen *ebiten.Image, msg string, clr color.Color) {
	screen.Fill(colorDarkGrey)
	drawTextCentered(screen, msg, w.width/2, w.height/2, 4, clr)
}

// Layout keeps the logical screen at the play area size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until the session ends or the window closes.
func Run(session *zombies.Session, sprites *Sprites, logger *log.Logger) (zombies.SessionResult, error) {
	w := NewWindow(session, sprites, logger)
	cfg := session.Config()

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(cfg.Timing.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return session.Result(), fmt.Errorf("run window: %w", err)
	}
	return session.Result(), nil
}
