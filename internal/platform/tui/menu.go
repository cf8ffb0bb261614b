package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-queue/internal/core"
	"github.com/vovakirdan/zombie-queue/internal/games/zombies"
)

// Start menu styles
var (
	menuTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true).
			MarginBottom(2)

	buttonStyle = lipgloss.NewStyle().
			Width(20).
			Padding(1, 0).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("0")).
			Bold(true)
)

// Button colors: start is green, exit is red, the selected one turns yellow.
var (
	startColor    = lipgloss.Color("2")
	exitColor     = lipgloss.Color("1")
	selectedColor = lipgloss.Color("11")
)

// menuButtons lists the start menu buttons in display order.
var menuButtons = []zombies.MenuChoice{zombies.MenuStart, zombies.MenuExit}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	chosen   bool
	choice   zombies.MenuChoice
	quitting bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuButtons)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		m.chosen = true
		m.choice = menuButtons[m.cursor]
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	buttons := make([]string, 0, len(menuButtons))
	for i, choice := range menuButtons {
		bg := startColor
		if choice == zombies.MenuExit {
			bg = exitColor
		}
		if i == m.cursor {
			bg = selectedColor
		}
		buttons = append(buttons, buttonStyle.Background(bg).Render(choice.String()))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		menuTitleStyle.Render("Zombie Survival Queue"),
		strings.Join(buttons, "\n\n"),
		"",
		m.help.View(m.keys),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Choice returns the selected button and whether one was selected.
func (m MenuModel) Choice() (zombies.MenuChoice, bool) {
	return m.choice, m.chosen
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice zombies.MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the start menu and returns the chosen button.
// Quitting the menu counts as EXIT.
func RunMenu(cfg core.RuntimeConfig, logger *log.Logger) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: zombies.MenuExit, Config: cfg}, err
	}

	result := MenuResult{Choice: zombies.MenuExit, Config: cfg}
	if m, ok := finalModel.(MenuModel); ok {
		result.Config = m.Config()
		if choice, chosen := m.Choice(); chosen {
			result.Choice = choice
		}
	}

	logger.Info("menu choice", "choice", result.Choice)
	return result, nil
}
