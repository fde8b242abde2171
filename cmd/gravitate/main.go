// gravitate is a terminal color-matching puzzle: select groups of
// same-colored tiles, watch the rest drift toward the center, and try to
// clear the board.
//
// Usage:
//
//	gravitate                  - Start the interactive menu
//	gravitate play [mode]      - Play a mode directly (gravitate, gravitate_bonus)
//	gravitate list             - List available modes
//	gravitate scores [mode]    - Show high scores for a mode
//	gravitate stats            - Show totals for every mode
//	gravitate options          - Edit the board options
//	gravitate config           - Print the effective board configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible boards
//	--db <path>            - Set database path (default: ~/.gravitate/scores.db)
//	--config <path>        - Use a custom YAML config
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--env-file <path>      - Read GRAVITATE_* overrides from a dotenv file
//	--log-file <path>      - Write logs to a file
//	--debug                - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravitate/internal/config"
	"github.com/vovakirdan/gravitate/internal/core"
	"github.com/vovakirdan/gravitate/internal/games/gravitate"
	"github.com/vovakirdan/gravitate/internal/platform/tui"
	"github.com/vovakirdan/gravitate/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagEnvFile    string
	flagLogFile    string
	flagDebug      bool
)

// logger reports on stderr until the TUI starts.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "gravitate"})

// logFile is the open --log-file, if any.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravitate",
	Short: "Gravitate - a color-matching puzzle for the terminal",
	Long: `Gravitate fills a board with colored tiles. Selecting a tile removes it
together with every same-colored tile connected to it, and the remaining
tiles drift toward the center of the board. Clear the board to win.

Available commands:
  play     - Play a mode directly
  menu     - Interactive menu (default)
  list     - Show available modes
  scores   - View high scores
  stats    - View totals for every mode
  options  - Edit the board options
  config   - Print the effective configuration

Examples:
  gravitate
  gravitate play --difficulty hard
  gravitate play gravitate_bonus --seed 42
  gravitate scores`,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runMenu,
	SilenceUsage:       true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.gravitate/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagEnvFile, "env-file", ".env", "Dotenv file with GRAVITATE_* overrides")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup wires logging and loads the board configuration before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	// The TUI owns the terminal, so game logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		closeLog()
		logFile = f
		out = f
	}
	gameLog := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "gravitate",
	})
	if flagDebug {
		gameLog.SetLevel(log.DebugLevel)
	}
	gravitate.SetLogger(gameLog)
	tui.SetLogger(gameLog)

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	gravitate.SetConfig(cfg)
	return nil
}

// teardown runs after a successful command. Failed commands are handled
// by main.
func teardown(_ *cobra.Command, _ []string) error {
	return closeLog()
}

// closeLog detaches the loggers from the log file and closes it.
func closeLog() error {
	if logFile == nil {
		return nil
	}
	gravitate.SetLogger(nil)
	tui.SetLogger(nil)
	err := logFile.Close()
	logFile = nil
	return err
}

// loadSettings layers the YAML config, GRAVITATE_* variables and the
// difficulty preset, then clamps the result.
func loadSettings() (config.GravitateConfig, error) {
	cfg, err := config.LoadGravitate(flagConfig)
	if err != nil {
		return cfg, err
	}

	env, err := config.Environ(flagEnvFile)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, env); err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	for _, note := range cfg.Clamp() {
		logger.Warn(note)
	}
	logger.Debug("config loaded",
		"columns", cfg.Board.Columns, "rows", cfg.Board.Rows,
		"colors", cfg.Board.MaxColors, "delay_ms", cfg.Board.DelayMs,
		"scoring", cfg.Scoring.Rule)
	return cfg, nil
}

// runtimeConfig builds the host settings from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
