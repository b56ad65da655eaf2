// floodfill is a terminal color flood puzzle.
//
// Usage:
//
//	floodfill list               - List available board variants
//	floodfill play [variant]     - Play a variant (default: floodfill)
//	floodfill menu               - Start menu to pick variants interactively
//	floodfill scores [variant]   - Show high scores for a variant
//	floodfill config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.floodfill/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, zen
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Log destination while the TUI runs
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-floodfill/internal/config"
	"github.com/vovakirdan/tui-floodfill/internal/games/floodfill"
	"github.com/vovakirdan/tui-floodfill/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logCloser closes the log file opened for TUI commands.
var logCloser io.Closer

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floodfill",
	Short: "Flood Fill - recolor the board until it is a single color",
	Long: `Flood Fill is a terminal color puzzle. Pick a color and flood the
region around a cell with it; the game is won when every cell shares one
color. The score counts down while the clock runs.

Available commands:
  list     - Show all board variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  floodfill play
  floodfill play floodfill_large --difficulty hard
  floodfill menu --seed 42
  floodfill scores floodfill_small
  floodfill config --difficulty zen`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.floodfill/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, zen")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.floodfill/floodfill.log", "Log file used while the TUI runs")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// tuiCommands own the terminal and must not log to it.
var tuiCommands = map[string]bool{
	"play": true,
	"menu": true,
}

// setup validates the shared flags and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	if tuiCommands[cmd.Name()] {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			// No usable log file: keep the terminal clean and drop logs
			w = io.Discard
		} else {
			w = f
			logCloser = f
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "floodfill",
		ReportTimestamp: true,
		Level:           level,
	})
	log.SetDefault(logger)

	floodfill.SetLogger(logger)
	floodfill.SetConfigPath(flagConfig)
	floodfill.SetDifficultyPreset(flagDifficulty)
	return nil
}

func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// openStore opens the score database, warning instead of failing when it
// is unavailable. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		log.Warn("scores database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
