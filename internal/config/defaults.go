package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/floodfill.yaml
var defaultFloodFillYAML []byte

// DefaultFloodFillConfig returns the default flood fill configuration.
func DefaultFloodFillConfig() FloodFillConfig {
	return FloodFillConfig{
		Board: BoardConfig{
			Size: 9,
		},
		Scoring: ScoringConfig{
			StartingScore: 500,
			Undos:         3,
		},
		Timer: TimerConfig{
			Enabled:  true,
			Interval: time.Second,
		},
		Leaderboard: LeaderboardConfig{
			Capacity: 5,
		},
		Palette: []PaletteColor{
			{Name: "white", Hex: "#ffffff"},
			{Name: "black", Hex: "#000000"},
			{Name: "red", Hex: "#ff0000"},
			{Name: "green", Hex: "#00ff00"},
			{Name: "blue", Hex: "#0000ff"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFloodFillYAML
}
