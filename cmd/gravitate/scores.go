package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravitate/internal/games/gravitate"
	"github.com/vovakirdan/gravitate/internal/platform/tui"
	"github.com/vovakirdan/gravitate/internal/registry"
	"github.com/vovakirdan/gravitate/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top scores for a mode (default: gravitate).

Examples:
  gravitate scores
  gravitate scores gravitate_bonus --limit 20
  gravitate scores --clear
  gravitate scores --plain > scores.txt

On a terminal the interactive scoreboard opens unless --plain is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals for every mode",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the mode")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as text")
}

func runScores(_ *cobra.Command, args []string) error {
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gravitate play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-9s  %s\n", "Rank", "Score", "Result", "Board", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-9s  %s\n", "----", "-----", "------", "-----", "----")
	for _, row := range tui.ScoreRows(scores) {
		fmt.Printf("  %-4s  %-10s  %-6s  %-9s  %s\n", row[0], row[1], row[2], row[3], row[4])
	}

	if best, err := store.HighScore(gameID); err == nil && best > 0 {
		fmt.Printf("\nBest clear: %d\n", best)
	}
	return nil
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %6s  %7s  %8s  %8s  %s\n", "Mode", "Games", "Cleared", "Best", "Average", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-16s  %6d  %7d  %8d  %8.0f  %s\n",
			id, s.GamesCount, s.Wins, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
