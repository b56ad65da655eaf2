package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := DefaultFloodFillConfig()

	if cfg.Board.Size != def.Board.Size {
		t.Errorf("board.size = %d, want %d", cfg.Board.Size, def.Board.Size)
	}
	if cfg.Scoring != def.Scoring {
		t.Errorf("scoring = %+v, want %+v", cfg.Scoring, def.Scoring)
	}
	if cfg.Timer != def.Timer {
		t.Errorf("timer = %+v, want %+v", cfg.Timer, def.Timer)
	}
	if cfg.Leaderboard != def.Leaderboard {
		t.Errorf("leaderboard = %+v, want %+v", cfg.Leaderboard, def.Leaderboard)
	}
	if len(cfg.Palette) != len(def.Palette) {
		t.Fatalf("palette has %d colors, want %d", len(cfg.Palette), len(def.Palette))
	}
	for i := range def.Palette {
		if cfg.Palette[i] != def.Palette[i] {
			t.Errorf("palette[%d] = %+v, want %+v", i, cfg.Palette[i], def.Palette[i])
		}
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  size: 6\ntimer:\n  enabled: true\n  interval: 500ms\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Board.Size != 6 {
		t.Errorf("board.size = %d, want 6", cfg.Board.Size)
	}
	if cfg.Timer.Interval != 500*time.Millisecond {
		t.Errorf("timer.interval = %v, want 500ms", cfg.Timer.Interval)
	}
	if cfg.Scoring.StartingScore != 500 || cfg.Scoring.Undos != 3 {
		t.Errorf("scoring should keep defaults, got %+v", cfg.Scoring)
	}
	if len(cfg.Palette) != 5 {
		t.Errorf("palette should default to 5 colors, got %d", len(cfg.Palette))
	}
}

func TestParsePaletteReplacesDefault(t *testing.T) {
	data := []byte(`
palette:
  - name: cyan
    hex: "#00ffff"
  - name: magenta
    hex: "#ff00ff"
  - name: yellow
    hex: "#ffff00"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cfg.Palette) != 3 || cfg.Palette[0].Name != "cyan" {
		t.Fatalf("palette = %+v, want the three configured colors", cfg.Palette)
	}
	r, g, b, err := cfg.Palette[1].RGB()
	if err != nil {
		t.Fatalf("RGB() failed: %v", err)
	}
	if r != 255 || g != 0 || b != 255 {
		t.Errorf("magenta RGB = (%d,%d,%d), want (255,0,255)", r, g, b)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FloodFillConfig)
	}{
		{"size too small", func(c *FloodFillConfig) { c.Board.Size = 1 }},
		{"size too large", func(c *FloodFillConfig) { c.Board.Size = MaxGridSize + 1 }},
		{"zero score", func(c *FloodFillConfig) { c.Scoring.StartingScore = 0 }},
		{"negative undos", func(c *FloodFillConfig) { c.Scoring.Undos = -1 }},
		{"zero interval", func(c *FloodFillConfig) { c.Timer.Interval = 0 }},
		{"zero capacity", func(c *FloodFillConfig) { c.Leaderboard.Capacity = 0 }},
		{"one color", func(c *FloodFillConfig) { c.Palette = c.Palette[:1] }},
		{"duplicate color", func(c *FloodFillConfig) { c.Palette[1].Name = "WHITE" }},
		{"unnamed color", func(c *FloodFillConfig) { c.Palette[0].Name = " " }},
		{"bad hex", func(c *FloodFillConfig) { c.Palette[2].Hex = "red" }},
	}

	if err := DefaultFloodFillConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFloodFillConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestValidateUntimedIgnoresInterval(t *testing.T) {
	cfg := DefaultFloodFillConfig()
	cfg.Timer.Enabled = false
	cfg.Timer.Interval = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled timer should not need an interval, got %v", err)
	}
}

func TestLoadFloodFillCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  starting_score: 900\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFloodFill(path)
	if err != nil {
		t.Fatalf("LoadFloodFill failed: %v", err)
	}
	if cfg.Scoring.StartingScore != 900 {
		t.Errorf("starting_score = %d, want 900", cfg.Scoring.StartingScore)
	}
}

func TestLoadFloodFillErrors(t *testing.T) {
	if _, err := LoadFloodFill(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  size: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFloodFill(path)
	if err == nil || !errors.Is(err, ErrInvalid) {
		t.Errorf("out-of-range size should fail validation, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the file, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultFloodFillConfig()
	ApplyPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "interval: 1s") {
		t.Errorf("durations should encode as strings, got:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(cfg)) failed: %v", err)
	}
	if back.Scoring != cfg.Scoring {
		t.Errorf("scoring = %+v, want %+v", back.Scoring, cfg.Scoring)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		score  int
		undos  int
		timed  bool
	}{
		{DifficultyEasy, 700, 5, true},
		{DifficultyNormal, 500, 3, true},
		{DifficultyHard, 400, 1, true},
		{DifficultyZen, 500, 3, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultFloodFillConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Scoring.StartingScore != tt.score || cfg.Scoring.Undos != tt.undos {
				t.Errorf("scoring = %+v, want score %d undos %d", cfg.Scoring, tt.score, tt.undos)
			}
			if cfg.Timer.Enabled != tt.timed {
				t.Errorf("timer.enabled = %v, want %v", cfg.Timer.Enabled, tt.timed)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; want normal", p, err)
	}
	if p, err := ParsePreset("HARD"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(HARD) = %q, %v; want hard", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}
