// zombies is Zombie Survival Queue: shoot the zombies that march down the
// field before they reach you or break through the bottom edge.
//
// Usage:
//
//	zombies play             - Play in the terminal
//	zombies window           - Play in a desktop window
//	zombies config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Path to a custom zombies.yaml
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file (terminal mode discards them otherwise)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-queue/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zombies",
	Short: "Zombie Survival Queue - hold the line for five levels",
	Long: `Zombie Survival Queue is a small arcade shooter. Zombies spawn at the
top of the field and walk down; shoot them before they touch you or
slip past the bottom edge. Clear five levels to win.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the default configuration

Examples:
  zombies play
  zombies play --seed 42
  zombies window --assets ./assets
  zombies config > ~/.zombies/configs/zombies.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second), overrides the config")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies the --fps override.
func loadConfig(cmd *cobra.Command) (config.ZombiesConfig, error) {
	cfg, err := config.LoadZombies(flagConfig)
	if err != nil {
		return config.ZombiesConfig{}, err
	}
	if cmd.Flags().Changed("fps") {
		cfg.Timing.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return config.ZombiesConfig{}, fmt.Errorf("--fps: %w", err)
		}
	}
	return cfg, nil
}
