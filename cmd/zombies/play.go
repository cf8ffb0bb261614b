package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zombie-queue/internal/core"
	"github.com/vovakirdan/zombie-queue/internal/games/zombies"
	"github.com/vovakirdan/zombie-queue/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Shoot
  R            - Restart (after game over)
  B/Esc        - Back to menu
  Q/Ctrl+C     - Quit

Examples:
  zombies play
  zombies play --seed 42 --log-file zombies.log
  zombies play --config ./my-zombies.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal, so logs need a file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	game, err := zombies.New(cfg)
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = cfg.Timing.TickRate
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	// Menu and game alternate until the player picks EXIT or quits
	for {
		choice, err := tui.RunMenu(runtime, logger)
		if err != nil {
			return err
		}
		runtime = choice.Config
		if choice.Choice == zombies.MenuExit {
			return nil
		}

		reason, err := tui.Run(game, runtime, logger)
		if err != nil {
			return err
		}
		if !game.State().GameOver {
			game.Quit()
			game.Step(core.NewInputFrame())
		}
		res := game.Result()
		logger.Info("session ended", "outcome", res.Outcome, "level", res.Level, "kills", res.Kills, "ticks", res.Ticks)
		if reason == tui.ExitQuit {
			return nil
		}
	}
}
