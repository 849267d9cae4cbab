package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/siggyrun/internal/leaderboard"
)

var (
	flagHistory      bool
	flagHistoryLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the Hall of Familiars and your personal best.

With --history, also list the most recent runs and overall statistics.

Examples:
  siggyrun scores
  siggyrun scores --history
  siggyrun scores --history --limit 5`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "Also show recent runs and statistics")
	scoresCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of recent runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, records := openRecords(log.New(io.Discard))
	if store != nil {
		defer store.Close()
	}

	board := records.Board()
	you := records.DisplayName()

	fmt.Println("Hall of Familiars")
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-*s  %-8s  %s\n", "Rank", leaderboard.MaxNameLen+6, "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-*s  %-8s  %s\n", "----", leaderboard.MaxNameLen+6, "----", "-----", "----")

	for i, e := range board {
		name := e.Name
		if e.Name == you {
			name += " (you)"
		}
		fmt.Printf("  %-4d  %-*s  %-8d  %s\n", i+1, leaderboard.MaxNameLen+6, name, e.Score, e.Date)
	}

	fmt.Println()
	fmt.Printf("%s - personal best: %d\n", you, records.PersonalBest())

	if !flagHistory {
		return
	}

	fmt.Println()
	if store == nil {
		fmt.Println("Run history needs the records database.")
		return
	}

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent rituals")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'siggyrun play' to start the history!")
		return
	}

	fmt.Printf("  %-16s  %-*s  %-8s  %s\n", "When", leaderboard.MaxNameLen, "Name", "Score", "Best")
	fmt.Printf("  %-16s  %-*s  %-8s  %s\n", "----", leaderboard.MaxNameLen, "----", "-----", "----")
	for _, r := range runs {
		mark := ""
		if r.NewBest {
			mark = "*"
		}
		fmt.Printf("  %-16s  %-*s  %-8d  %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), leaderboard.MaxNameLen, r.Player, r.Score, mark)
	}

	stats, err := store.RunStats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  High: %d  Average: %.1f  Total: %d\n", stats.Runs, stats.HighScore, stats.AvgScore, stats.TotalScore)
	}
}
