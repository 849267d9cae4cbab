package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var nameCmd = &cobra.Command{
	Use:   "name <name>",
	Short: "Set your leaderboard name",
	Long: `Store the name your runs are recorded under.

Names are trimmed and cut to 12 characters. Renaming does not move
entries already on the leaderboard.

Examples:
  siggyrun name Nyx
  siggyrun name "Moon Whisker"`,
	Args: cobra.MinimumNArgs(1),
	Run:  runName,
}

func runName(_ *cobra.Command, args []string) {
	store, records := openRecords(log.New(io.Discard))
	if store == nil {
		fmt.Fprintln(os.Stderr, "Error: the name cannot be saved without the records database")
		os.Exit(1)
	}
	defer store.Close()

	if err := records.SetName(strings.Join(args, " ")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("You will be remembered as %s.\n", records.DisplayName())
}
