package floodfill

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-floodfill/internal/config"
	"github.com/vovakirdan/tui-floodfill/internal/core"
	"github.com/vovakirdan/tui-floodfill/internal/registry"
)

func useConfig(t *testing.T, cfg config.FloodFillConfig, preset string) {
	t.Helper()
	SetConfig(&cfg)
	SetDifficultyPreset(preset)
	t.Cleanup(func() {
		SetConfig(nil)
		SetDifficultyPreset("")
	})
}

func newTestGame(t *testing.T, v Variant) *Game {
	t.Helper()
	useConfig(t, config.DefaultFloodFillConfig(), "")
	g := New(v)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	return g
}

// seedBoard replaces the random board with a known one.
func seedBoard(t *testing.T, g *Game, rows ...string) {
	t.Helper()
	grid := mustGrid(t, rows...)
	if err := g.Session().StartNewGame(&grid); err != nil {
		t.Fatal(err)
	}
	g.afterBoardSwap()
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestVariantsRegistered(t *testing.T) {
	tests := []struct {
		id   string
		size int
	}{
		{"floodfill", config.DefaultFloodFillConfig().Board.Size},
		{"floodfill_small", 6},
		{"floodfill_large", 14},
	}

	useConfig(t, config.DefaultFloodFillConfig(), "")
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if !registry.Exists(tt.id) {
				t.Fatalf("variant %q not registered", tt.id)
			}
			g, err := registry.Create(tt.id)
			if err != nil {
				t.Fatal(err)
			}
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 5})
			if got := g.(*Game).Snapshot().Session.Grid.Size(); got != tt.size {
				t.Errorf("grid size = %d, want %d", got, tt.size)
			}
			if g.ID() != tt.id {
				t.Errorf("ID() = %q", g.ID())
			}
		})
	}
}

func TestGameDeterministicSeed(t *testing.T) {
	a := newTestGame(t, Variants[0])
	b := newTestGame(t, Variants[0])
	if !a.Snapshot().Session.Grid.Equal(b.Snapshot().Session.Grid) {
		t.Error("same seed produced different boards")
	}
}

func TestGameCursorMovement(t *testing.T) {
	g := newTestGame(t, Variant{ID: "t", Title: "T", Size: 3})

	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionLeft))
	if g.Cursor() != At(0, 0) {
		t.Errorf("cursor = %s, want clamped (0,0)", g.Cursor())
	}
	for i := 0; i < 5; i++ {
		g.Step(frame(core.ActionDown))
		g.Step(frame(core.ActionRight))
	}
	if g.Cursor() != At(2, 2) {
		t.Errorf("cursor = %s, want clamped (2,2)", g.Cursor())
	}
}

func TestGameColorSelection(t *testing.T) {
	g := newTestGame(t, Variants[0])

	g.Step(frame(core.ActionPrevColor))
	if g.SelectedColor() != Blue {
		t.Errorf("prev from first = %d, want Blue (wraps)", g.SelectedColor())
	}
	g.Step(frame(core.ActionNextColor))
	if g.SelectedColor() != White {
		t.Errorf("next from last = %d, want White (wraps)", g.SelectedColor())
	}

	in := core.NewInputFrame()
	in.Color = 3
	g.Step(in)
	if g.SelectedColor() != Red {
		t.Errorf("slot 3 = %d, want Red", g.SelectedColor())
	}

	in.Color = 9 // no such slot
	g.Step(in)
	if g.SelectedColor() != Red {
		t.Errorf("invalid slot changed selection to %d", g.SelectedColor())
	}
}

func TestGameKeyboardScenario(t *testing.T) {
	g := newTestGame(t, Variants[0])
	seedBoard(t, g, "222", "242", "222")

	pickGreen := core.NewInputFrame()
	pickGreen.Color = int(Green) + 1
	g.Step(pickGreen)

	g.Step(frame(core.ActionDown))
	g.Step(frame(core.ActionRight))
	res := g.Step(frame(core.ActionConfirm))
	if res.State.GameOver {
		t.Fatal("won after first move")
	}
	if got := g.Snapshot().Session.Grid; !got.Equal(mustGrid(t, "222", "232", "222")) {
		t.Errorf("after first fill:\n%s", got)
	}

	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionLeft))
	res = g.Step(frame(core.ActionConfirm))
	if !res.State.Won || !res.State.GameOver {
		t.Fatalf("expected win, state = %+v", res.State)
	}

	// Further fills are ignored without a notice
	res = g.Step(frame(core.ActionConfirm))
	if res.Notice != "" {
		t.Errorf("fill after win produced notice %q", res.Notice)
	}
}

func TestGameMouseFill(t *testing.T) {
	g := newTestGame(t, Variants[0])
	seedBoard(t, g, "222", "242", "222")

	in := core.NewInputFrame()
	in.Color = int(Green) + 1
	g.Step(in)

	// Click the right half of the center cell
	o := g.CellOrigin(At(1, 1))
	click := core.NewInputFrame()
	click.Click = &core.Point{X: o.X + 1, Y: o.Y}
	g.Step(click)

	if g.Cursor() != At(1, 1) {
		t.Errorf("cursor = %s, want (1,1)", g.Cursor())
	}
	if got := g.Snapshot().Session.Grid.At(At(1, 1)); got != Green {
		t.Errorf("clicked cell = %d, want Green", got)
	}

	// Clicks outside the board do nothing
	miss := core.NewInputFrame()
	miss.Click = &core.Point{X: 0, Y: 23}
	g.Step(miss)
	if g.Snapshot().Session.Moves != 1 {
		t.Errorf("Moves = %d after missed click, want 1", g.Snapshot().Session.Moves)
	}
}

func TestGameSwatchClick(t *testing.T) {
	g := newTestGame(t, Variants[0])

	r := g.layout.swatches[Blue]
	click := core.NewInputFrame()
	click.Click = &core.Point{X: r.X + 1, Y: r.Y}
	g.Step(click)

	if g.SelectedColor() != Blue {
		t.Errorf("SelectedColor() = %d, want Blue", g.SelectedColor())
	}
	if g.Snapshot().Session.Moves != 0 {
		t.Error("swatch click counted as a move")
	}
}

func TestGameUndoNotice(t *testing.T) {
	g := newTestGame(t, Variants[0])

	res := g.Step(frame(core.ActionUndo))
	if res.Notice != NoticeNoUndos {
		t.Errorf("Notice = %q, want %q", res.Notice, NoticeNoUndos)
	}

	g.Step(frame(core.ActionConfirm))
	res = g.Step(frame(core.ActionUndo))
	if res.Notice != "" {
		t.Errorf("successful undo produced notice %q", res.Notice)
	}
	if g.Snapshot().Session.UndosLeft != DefaultUndos-1 {
		t.Errorf("UndosLeft = %d", g.Snapshot().Session.UndosLeft)
	}
}

func TestGameTransposeMovesCursor(t *testing.T) {
	g := newTestGame(t, Variants[0])
	seedBoard(t, g, "012", "340", "123")

	g.Step(frame(core.ActionRight))
	before := g.Snapshot()
	g.Step(frame(core.ActionTranspose))
	after := g.Snapshot()

	if after.Cursor != At(1, 0) {
		t.Errorf("cursor = %s, want (1,0)", after.Cursor)
	}
	if before.Session.Grid.At(before.Cursor) != after.Session.Grid.At(after.Cursor) {
		t.Error("cursor no longer on the same color after transpose")
	}
	if after.Session.Moves != 0 {
		t.Error("transpose counted as a move")
	}
}

func TestGameRestartAndNewGame(t *testing.T) {
	g := newTestGame(t, Variants[0])
	original := g.Snapshot().Session.Grid

	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionRestart))
	snap := g.Snapshot().Session
	if !snap.Grid.Equal(original) || snap.Moves != 0 {
		t.Errorf("restart did not replay the original board")
	}

	g.Step(frame(core.ActionNewGame))
	if g.Snapshot().Session.Grid.Equal(original) {
		t.Error("new game reused the original board")
	}
}

func TestGamePauseBlocksMoves(t *testing.T) {
	g := newTestGame(t, Variants[0])

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("not paused")
	}
	res = g.Step(frame(core.ActionConfirm))
	if res.Notice != NoticePaused {
		t.Errorf("Notice = %q, want %q", res.Notice, NoticePaused)
	}
	if g.Snapshot().Session.Moves != 0 {
		t.Error("fill applied while paused")
	}

	g.Step(frame(core.ActionClock))
	if g.State().Score != DefaultStartingScore {
		t.Error("clock ran while paused")
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("not resumed")
	}
	g.Step(frame(core.ActionClock))
	if g.State().Score != DefaultStartingScore-1 {
		t.Errorf("Score = %d after tick, want %d", g.State().Score, DefaultStartingScore-1)
	}
}

func TestGameDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset  string
		score   int
		undos   int
		running bool
	}{
		{"", 500, 3, true},
		{"easy", 700, 5, true},
		{"hard", 400, 1, true},
		{"zen", 500, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			useConfig(t, config.DefaultFloodFillConfig(), tt.preset)
			g := New(Variants[0])
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

			snap := g.Snapshot().Session
			if snap.Score != tt.score || snap.UndosLeft != tt.undos || snap.TimerRunning != tt.running {
				t.Errorf("snapshot = score %d, undos %d, running %v", snap.Score, snap.UndosLeft, snap.TimerRunning)
			}
		})
	}
}

func TestGameConfigWithoutUndos(t *testing.T) {
	cfg := config.DefaultFloodFillConfig()
	cfg.Scoring.Undos = 0
	useConfig(t, cfg, "")

	g := New(Variants[0])
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	g.Step(frame(core.ActionConfirm))

	if res := g.Step(frame(core.ActionUndo)); res.Notice != NoticeNoUndos {
		t.Errorf("Notice = %q, want %q", res.Notice, NoticeNoUndos)
	}
}

func TestGameCustomPalette(t *testing.T) {
	cfg := config.DefaultFloodFillConfig()
	cfg.Palette = []config.PaletteColor{
		{Name: "orange", Hex: "#ff8800"},
		{Name: "teal", Hex: "#008080"},
	}
	useConfig(t, cfg, "")

	g := New(Variants[0])
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	p := g.Session().Palette()
	if p.Len() != 2 || p.Name(1) != "teal" || p.Swatch(0).Hex() != "#ff8800" {
		t.Errorf("palette = %+v", p)
	}
	if err := g.Snapshot().Session.Grid.CheckPalette(p); err != nil {
		t.Error(err)
	}
}

type memScores struct {
	mu     sync.Mutex
	seeded map[string][]int
	saved  []string
}

func (m *memScores) SaveWin(gameID string, score, moves, elapsed int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, gameID)
	return nil
}

func (m *memScores) TopScoreValues(gameID string, limit int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seeded[gameID], nil
}

func TestGameScoreStore(t *testing.T) {
	useConfig(t, config.DefaultFloodFillConfig(), "")
	store := &memScores{seeded: map[string][]int{"floodfill_small": {300, 450}}}

	g := New(Variants[1])
	g.BindScores(store)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if got := g.Snapshot().Session.TopScores; len(got) != 2 || got[0] != 450 {
		t.Errorf("TopScores = %v, want seeded [450 300]", got)
	}

	seedBoard(t, g, "22", "24")
	in := core.NewInputFrame()
	in.Color = int(Red) + 1
	in.Set(core.ActionConfirm)
	g.Step(frame(core.ActionDown))
	g.Step(frame(core.ActionRight))
	if res := g.Step(in); !res.State.Won {
		t.Fatal("expected win")
	}

	if len(store.saved) != 1 || store.saved[0] != "floodfill_small" {
		t.Errorf("saved = %v", store.saved)
	}
	if got := g.Snapshot().Session.TopScores; got[0] != DefaultStartingScore {
		t.Errorf("TopScores = %v, want %d first", got, DefaultStartingScore)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, Variants[0])
	seedBoard(t, g, "22", "24")
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	text := screen.String()
	for _, want := range []string{"Flood Fill", "Score 500", "Undos 3", "Colors", "Top scores", "none yet", "[]"} {
		if !strings.Contains(text, want) {
			t.Errorf("render missing %q:\n%s", want, text)
		}
	}

	// Cells carry their swatch color
	o := g.CellOrigin(At(1, 1))
	if bg := screen.GetCell(o.X+1, o.Y).Bg; bg != core.NewRGB(0, 0, 255) {
		t.Errorf("cell (1,1) background = %+v, want blue", bg)
	}

	in := core.NewInputFrame()
	in.Color = int(Red) + 1
	g.Step(in)
	g.Step(frame(core.ActionDown))
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionConfirm))

	g.Render(screen)
	if !strings.Contains(screen.String(), "You won! Final score: 500") {
		t.Errorf("win message missing:\n%s", screen.String())
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, Variants[2])
	g.Resize(30, 10)
	screen := core.NewScreen(30, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}

	click := core.NewInputFrame()
	click.Click = &core.Point{X: 5, Y: 5}
	g.Step(click)
	if g.Snapshot().Session.Moves != 0 {
		t.Error("click accepted on a too-small screen")
	}
}

func TestGameStartClock(t *testing.T) {
	cfg := config.DefaultFloodFillConfig()
	cfg.Timer.Interval = 5 * time.Millisecond
	useConfig(t, cfg, "")

	g := New(Variants[0])
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	ticked := make(chan struct{}, 1)
	stop := g.StartClock(context.Background(), func() {
		select {
		case ticked <- struct{}{}:
		default:
		}
	})
	defer stop()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("clock never ticked")
	}
	if g.State().Score >= DefaultStartingScore {
		t.Error("score did not count down")
	}
}
