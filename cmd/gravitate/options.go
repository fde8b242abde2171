package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravitate/internal/config"
	"github.com/vovakirdan/gravitate/internal/games/gravitate"
	"github.com/vovakirdan/gravitate/internal/platform/tui"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Edit the board options",
	Long: `Open the options form to change the board size, color count,
animation delay and scoring rule. Choosing Save writes the config file
(--config, or ~/.gravitate/configs/gravitate.yaml).`,
	Args: cobra.NoArgs,
	RunE: runOptions,
}

func runOptions(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()
	board, saved, err := tui.RunOptions(gravitate.Config(), cfg.ScreenW, cfg.ScreenH)
	if err != nil {
		return err
	}
	if !saved {
		return nil
	}
	path, err := config.Save(board, flagConfig)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", path)
	return nil
}
