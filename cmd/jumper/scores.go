package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubble-jump/internal/platform/tui"
	"github.com/vovakirdan/bubble-jump/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagYes         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top 10 runs and the stored high score.

Examples:
  jumper scores
  jumper scores --interactive
  jumper scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all runs in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history and the high score")
	scoresCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation with --clear")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		return clearScores(store)
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			return fmt.Errorf("running scoreboard: %w", err)
		}
		return nil
	default:
		return printScores(store)
	}
}

func clearScores(store *storage.Store) error {
	if !flagYes {
		fmt.Print("Delete all runs and the high score? [y/N] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := store.ClearScores(); err != nil {
		return fmt.Errorf("clearing scores: %w", err)
	}
	logger.Info("scores cleared", "db", flagDBPath)
	fmt.Println("Scores cleared.")
	return nil
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Bubble Jump")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'jumper play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Date", "Run")
	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "----", "-----", "----", "---")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, dateStr, shortRunID(entry.RunID))
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Runs: %d  Average: %.0f\n", stats.RunsCount, stats.AvgScore)
	}
	return nil
}

// shortRunID returns the first block of a UUID.
func shortRunID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
