package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-floodfill/internal/games/floodfill"
	"github.com/vovakirdan/tui-floodfill/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows a list of all flood fill variants and their board sizes.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	sizes := make(map[string]string, len(floodfill.Variants))
	for _, v := range floodfill.Variants {
		if v.Size > 0 {
			sizes[v.ID] = fmt.Sprintf("%dx%d", v.Size, v.Size)
		} else {
			sizes[v.ID] = "config"
		}
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Board", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, g.ID, sizes[g.ID], g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'floodfill play <id>' to play a variant.")
}
