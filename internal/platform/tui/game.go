package tui

import "github.com/vovakirdan/zombie-queue/internal/core"

// Game is a frame-stepped game the terminal frontend can drive.
type Game interface {
	// ID returns the unique identifier.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a fresh run.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(screen *core.Screen)

	// State returns the coarse state without advancing.
	State() core.GameState
}
