// Package config provides YAML-based game configuration loading and
// difficulty presets for flood fill.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Grid size and palette bounds accepted by Validate.
const (
	MinGridSize    = 2
	MaxGridSize    = 16
	MinPaletteSize = 2
	MaxPaletteSize = 9 // one number key per color
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// FloodFillConfig contains all configuration for the flood fill game.
type FloodFillConfig struct {
	Board       BoardConfig       `yaml:"board"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Timer       TimerConfig       `yaml:"timer"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Palette     []PaletteColor    `yaml:"palette"`
}

// BoardConfig defines the grid shape.
type BoardConfig struct {
	Size int `yaml:"size"` // cells per axis
}

// ScoringConfig defines the score budget and undo allowance.
type ScoringConfig struct {
	StartingScore int `yaml:"starting_score"`
	Undos         int `yaml:"undos"` // 0 disables undo
}

// TimerConfig defines the score countdown.
type TimerConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"` // score drops by one per interval
}

// LeaderboardConfig defines how many scores are kept.
type LeaderboardConfig struct {
	Capacity int `yaml:"capacity"`
}

// PaletteColor is a named color given as a #rrggbb hex string.
type PaletteColor struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// RGB parses the hex value into 8-bit channels.
func (p PaletteColor) RGB() (r, g, b uint8, err error) {
	c, err := colorful.Hex(p.Hex)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: color %q: %v", ErrInvalid, p.Name, err)
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c FloodFillConfig) Validate() error {
	if c.Board.Size < MinGridSize || c.Board.Size > MaxGridSize {
		return fmt.Errorf("%w: board.size %d outside [%d, %d]", ErrInvalid, c.Board.Size, MinGridSize, MaxGridSize)
	}
	if c.Scoring.StartingScore <= 0 {
		return fmt.Errorf("%w: scoring.starting_score must be positive", ErrInvalid)
	}
	if c.Scoring.Undos < 0 {
		return fmt.Errorf("%w: scoring.undos must not be negative", ErrInvalid)
	}
	if c.Timer.Enabled && c.Timer.Interval <= 0 {
		return fmt.Errorf("%w: timer.interval must be positive", ErrInvalid)
	}
	if c.Leaderboard.Capacity <= 0 {
		return fmt.Errorf("%w: leaderboard.capacity must be positive", ErrInvalid)
	}
	if n := len(c.Palette); n < MinPaletteSize || n > MaxPaletteSize {
		return fmt.Errorf("%w: palette has %d colors, need %d-%d", ErrInvalid, n, MinPaletteSize, MaxPaletteSize)
	}

	seen := make(map[string]bool, len(c.Palette))
	for _, p := range c.Palette {
		name := strings.ToLower(strings.TrimSpace(p.Name))
		if name == "" {
			return fmt.Errorf("%w: palette color without a name", ErrInvalid)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate palette color %q", ErrInvalid, p.Name)
		}
		seen[name] = true
		if _, _, _, err := p.RGB(); err != nil {
			return err
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyZen    DifficultyPreset = "zen"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyZen}
}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or zen)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FloodFillConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.StartingScore = 700
		cfg.Scoring.Undos = 5
	case DifficultyHard:
		cfg.Scoring.StartingScore = 400
		cfg.Scoring.Undos = 1
	case DifficultyZen:
		cfg.Timer.Enabled = false
	}
}
