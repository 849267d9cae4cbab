// siggyrun is an endless runner for the terminal: a cat familiar leaps over
// hats, books and elixirs on a scrolling track while the mana counter climbs.
//
// Usage:
//
//	siggyrun play            - Start a run
//	siggyrun scores          - Show the leaderboard and personal best
//	siggyrun name <name>     - Set the leaderboard name
//	siggyrun config          - Print the effective tuning as YAML
//	siggyrun serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set display refresh rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible obstacle sequences
//	--db <path>     - Set database path (default: ~/.siggyrun/siggyrun.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "siggyrun",
	Short: "Siggy Run - an endless runner in your terminal",
	Long: `Siggy Run is a terminal endless runner. Jump over the obstacles,
gather essence, and carve your name into the Hall of Familiars.

Available commands:
  play     - Start a run
  scores   - View the leaderboard and run history
  name     - Set your leaderboard name
  config   - Print the effective tuning
  serve    - Start SSH server for remote play

Examples:
  siggyrun play
  siggyrun play --difficulty hard
  siggyrun scores --history
  siggyrun serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Display refresh rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.siggyrun/siggyrun.db", "Path to records database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
