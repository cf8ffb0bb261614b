package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-queue/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default zombies.yaml.

Save it as ~/.zombies/configs/zombies.yaml or ./configs/zombies.yaml
and edit it to tune the game. Fields left out keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
