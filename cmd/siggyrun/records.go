package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/siggyrun/internal/config"
	"github.com/vovakirdan/siggyrun/internal/leaderboard"
	"github.com/vovakirdan/siggyrun/internal/storage"
)

// openRecords opens the database and loads the records from it. Without a
// database the records live in memory for this process only.
func openRecords(logger *log.Logger) (*storage.Store, *leaderboard.Records) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		// Continue without storage - the game still works
		return nil, leaderboard.Load(leaderboard.NewMemoryKV(), logger)
	}
	return store, leaderboard.Load(store, logger)
}

// loadRunnerConfig loads the tuning and applies a difficulty preset.
func loadRunnerConfig(path, difficulty string) (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	cfg, err := config.LoadRunner(path)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	config.ApplyRunnerPreset(&cfg, preset)
	return cfg, nil
}
