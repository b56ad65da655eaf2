package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-floodfill/internal/core"
	"github.com/vovakirdan/tui-floodfill/internal/platform/tui"
	"github.com/vovakirdan/tui-floodfill/internal/registry"
)

const defaultVariant = "floodfill"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing the specified variant (default: floodfill).

Controls:
  Arrows/hjkl    - Move the cursor
  1-9            - Select a color
  Tab/Shift+Tab  - Next/previous color
  Enter/Space    - Flood fill from the cursor
  Mouse click    - Fill the clicked cell, or pick a clicked swatch
  U/Ctrl+Z       - Undo (limited)
  T              - Transpose the board
  R              - Restart the same board
  N              - New random board
  P/Esc          - Pause the clock
  ?              - Toggle full help
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - 700 points, 5 undos
  normal - 500 points, 3 undos
  hard   - 400 points, 1 undo
  zen    - No clock, the score never drops

Examples:
  floodfill play
  floodfill play floodfill_small
  floodfill play --difficulty zen
  floodfill play --seed 42 --config ./my-floodfill.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'floodfill list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
