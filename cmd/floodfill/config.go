package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-floodfill/internal/config"
	"github.com/vovakirdan/tui-floodfill/internal/games/floodfill"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a new game would use, as YAML.

The output is the config file found via --config, the user config
directory or ./configs, with the --difficulty preset applied. Redirect it
to a file to start a custom config.

Examples:
  floodfill config
  floodfill config --difficulty hard
  floodfill config > ~/.floodfill/configs/floodfill.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := floodfill.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
