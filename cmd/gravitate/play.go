package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravitate/internal/games/gravitate"
	"github.com/vovakirdan/gravitate/internal/platform/tui"
	"github.com/vovakirdan/gravitate/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode directly",
	Long: `Start a new board in the given mode (default: gravitate).

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Enter/Space       - Select the group under the cursor
  Mouse click       - Select the clicked group
  R/N               - New board
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 7x7 board, 3 colors
  normal - 9x9 board, 4 colors
  hard   - 12x12 board, 6 colors
  fixed  - Keep the loaded config as-is

Examples:
  gravitate play
  gravitate play gravitate_bonus
  gravitate play --difficulty hard --seed 7
  gravitate play --config ./board.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := gravitate.ClassicID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'gravitate list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
