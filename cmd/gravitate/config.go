package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gravitate/internal/config"
	"github.com/vovakirdan/gravitate/internal/games/gravitate"
)

var flagSave bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the board configuration after applying the config file,
GRAVITATE_* environment variables and the difficulty preset.

With --save the result is written back to the config file
(--config, or ~/.gravitate/configs/gravitate.yaml).

Environment variables:
  GRAVITATE_COLUMNS, GRAVITATE_ROWS, GRAVITATE_MAX_COLORS,
  GRAVITATE_DELAY_MS, GRAVITATE_SCORING`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagSave, "save", false, "Write the effective configuration")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := gravitate.Config()
	if flagSave {
		path, err := config.Save(cfg, flagConfig)
		if err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", path)
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
