// tictactoe is a two-player tic-tac-toe game for the terminal.
//
// Usage:
//
//	tictactoe [--config <path>] [--log-file <path>] [--log-level <level>]
//
// Configuration is read from the YAML file given with --config, or from
// TICTACTOE_* environment variables. Flags override both.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tictactoe/internal/config"
	"tictactoe/internal/game"
	"tictactoe/internal/store"
	"tictactoe/internal/tui"
)

var (
	flagConfig    string
	flagLogFile   string
	flagLogLevel  string
	flagInline    bool
	flagHideScore bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Play tic-tac-toe in your terminal",
	Long: `Two players take turns marking a 3x3 grid. Three in a row wins.

Controls:
  1-9          - Place a mark (1 is top-left, 9 is bottom-right)
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Place a mark under the cursor
  N/R          - Start a new game (the score is kept)
  Q/Esc        - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagInline, "inline", false, "Render without the alternate screen")
	rootCmd.Flags().BoolVar(&flagHideScore, "hide-score", false, "Hide the cumulative score")
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logger = logger.With("session", uuid.NewString())
	logger.Info("starting", "inline", cfg.Inline, "show_score", !cfg.HideScore)

	model := tui.NewModel(game.NewEngine(), store.NewScoreStore(), tui.Options{
		ShowScore: !cfg.HideScore,
		Logger:    logger,
	})

	if err := tui.Run(model, !cfg.Inline); err != nil {
		logger.Error("tui stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("inline") {
		cfg.Inline = flagInline
	}
	if flags.Changed("hide-score") {
		cfg.HideScore = flagHideScore
	}
}

// newLogger builds the process logger. The terminal belongs to the game, so
// without a log file everything is discarded.
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", cfg.LogFile, err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tictactoe",
		Level:           level,
	})
	return logger, closeFn, nil
}
