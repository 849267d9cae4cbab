package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/siggyrun/internal/config"
	"github.com/vovakirdan/siggyrun/internal/core"
	"github.com/vovakirdan/siggyrun/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start the runner. The run begins on the first jump.

Controls:
  Space/Up/W/Enter/Click  - Begin, jump, retry
  Tab/L                   - Leaderboard (not during a run)
  N                       - Rename (not during a run)
  Q/Ctrl+C                - Quit

Difficulty options:
  easy   - Slower start, gentle acceleration
  normal - Reference tuning
  hard   - Faster start, steeper acceleration
  fixed  - No acceleration, stays at the initial speed

Examples:
  siggyrun play
  siggyrun play --name Nyx
  siggyrun play --difficulty hard
  siggyrun play --config ./my-runner.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagName, "name", "", "Leaderboard name for this and later runs")
}

func runPlay(_ *cobra.Command, _ []string) {
	runnerCfg, err := loadRunnerConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so diagnostics go to a file
	logger, closeLog := openLogFile()
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, records := openRecords(logger)

	runErr := tui.Run(tui.Options{
		Runner: runnerCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
			Player:   flagName,
		},
		Records: records,
		Store:   store,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile opens ~/.siggyrun/siggyrun.log for appending. If that fails
// the logger discards everything.
func openLogFile() (*log.Logger, func()) {
	path := config.UserPath("siggyrun.log")
	if path == "" {
		return log.New(io.Discard), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "siggyrun",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}
