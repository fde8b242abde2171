package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravitate/internal/config"
	"github.com/vovakirdan/gravitate/internal/games/gravitate"
	"github.com/vovakirdan/gravitate/internal/platform/tui"
	"github.com/vovakirdan/gravitate/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start Gravitate in interactive menu mode.

Pick a mode to play, edit the board options or browse the high scores.
After a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Left/Right   - Change an option
  Enter/Space  - Select
  Tab          - High scores
  Esc/Q        - Quit`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(gravitate.Config(), cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsOptions:
			board, saved, err := tui.RunOptions(gravitate.Config(), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if saved {
				gravitate.SetConfig(board)
				path, err := config.Save(board, flagConfig)
				if err != nil {
					logger.Warn("could not save config", "error", err)
				} else {
					logger.Debug("config saved", "path", path)
				}
			}

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			game, err := registry.Create(res.GameID)
			if err != nil {
				logger.Error("could not create game", "mode", res.GameID, "error", err)
				continue
			}
			run := cfg
			if run.Seed == 0 {
				run.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, store, run); err != nil {
				logger.Error("game failed", "mode", res.GameID, "error", err)
			}
		}
	}
}
