package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-floodfill/internal/registry"
	"github.com/vovakirdan/tui-floodfill/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the top high scores for the specified variant (default: floodfill).

Examples:
  floodfill scores
  floodfill scores floodfill_large
  floodfill scores --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := defaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'floodfill list' to see available variants.")
		os.Exit(1)
	}
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'floodfill play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %s\n", "Rank", "Score", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-5d  %-5s  %s\n",
			i+1, entry.Score, entry.Moves, clockTime(entry.Elapsed), dateStr)
	}

	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		log.Warn("cannot load stats", "game", gameID, "error", err)
		return
	}
	fmt.Printf("Best: %d  Wins: %d  Average: %.0f  Fewest moves: %d  Fastest: %s\n",
		stats.HighScore, stats.Wins, stats.AvgScore, stats.FewestMove, clockTime(stats.FastestWin))
}

// clockTime formats seconds as m:ss.
func clockTime(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
