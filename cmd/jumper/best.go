package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Print the highest score",
	Long: `Print the highest number of carrots collected in one run.

Examples:
  jumper best
  jumper best --db ./scores.db
  jumper best --reset`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

var flagResetBest bool

func init() {
	bestCmd.Flags().BoolVar(&flagResetBest, "reset", false, "Forget the stored highest score")
}

func runBest(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("%v", err)
	}
	defer store.Close()

	best := storage.NewBestScore(store, logger)
	if flagResetBest {
		if err := best.Reset(cmd.Context()); err != nil {
			fail("%v", err)
		}
	}
	fmt.Printf("Highest: %d\n", best.Load(cmd.Context()))
}
