package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-queue/internal/core"
)

// latchTicks is how long a directional key press counts as held.
// Terminals report key repeats but never key releases.
const latchTicks = 8

// directions lists the latched movement actions.
var directions = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// opposite returns the direction that cancels a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}

// ExitReason tells the caller why the game model stopped.
type ExitReason int

const (
	ExitQuit ExitReason = iota // Leave the program
	ExitMenu                   // Return to the start menu
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	latch      map[core.Action]int
	gameState  core.GameState
	exit       ExitReason
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom row of the terminal is reserved for the help bar.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:     cfg,
		logger:     logger,
		keys:       DefaultGameKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		latch:      make(map[core.Action]int, len(directions)),
	}
}

// Init starts the tick loop. The game is reset by NewModel's caller or Run.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.exit = ExitQuit
		return m, tea.Quit

	case core.ActionBack:
		m.quitting = true
		m.exit = ExitMenu
		return m, tea.Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.latch[action] = latchTicks
		delete(m.latch, opposite(action))

	case core.ActionFire, core.ActionRestart:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The play area is logical,
// so the run continues at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.keys.Restart.SetEnabled(false)
		m.logger.Info("game restarted", "seed", m.config.Seed)
		m.inputFrame.Clear()
		clear(m.latch)
		return m, tickCmd(m.config.TickRate)
	}

	for _, a := range directions {
		if m.latch[a] > 0 {
			m.inputFrame.Set(a)
			m.latch[a]--
		}
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, m.gameState)
	m.keys.Restart.SetEnabled(m.gameState.GameOver)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logTransition logs phase changes between two ticks.
func (m Model) logTransition(prev, cur core.GameState) {
	if prev.Status == cur.Status && prev.Level == cur.Level {
		return
	}
	switch cur.Status {
	case "announce":
		m.logger.Info("level announce", "level", cur.Level)
	case "cleared":
		m.logger.Info("level cleared", "level", prev.Level, "score", cur.Score)
	case "won":
		m.logger.Info("game won", "score", cur.Score)
	case "lost":
		m.logger.Info("game lost", "level", cur.Level, "score", cur.Score)
	default:
		m.logger.Debug("phase change", "from", prev.Status, "to", cur.Status, "level", cur.Level)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Exit returns why the model stopped.
func (m Model) Exit() ExitReason {
	return m.exit
}

// Run resets the game and plays it until the player quits or goes back to the menu.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) (ExitReason, error) {
	model := NewModel(game, cfg, logger)
	game.Reset(model.config)
	model.gameState = game.State()
	logger.Info("game started", "game", game.ID(), "seed", model.config.Seed, "level", model.gameState.Level)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return ExitQuit, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.Exit(), nil
	}
	return ExitQuit, nil
}
