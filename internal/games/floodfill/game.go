// Package floodfill implements the flood fill color puzzle.
// The player recolors the region around a seed cell until the whole grid
// shows a single color, racing a score that counts down with the clock.
package floodfill

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-floodfill/internal/config"
	"github.com/vovakirdan/tui-floodfill/internal/core"
	"github.com/vovakirdan/tui-floodfill/internal/registry"
)

// Notices shown by the platform for a couple of seconds.
const (
	NoticeNoUndos = "No undos remaining"
	NoticePaused  = "Paused - press P to resume"
	NoticeReset   = "Board reset after an internal error"
)

// Variant is a registered flavor of the game.
type Variant struct {
	ID    string
	Title string
	Size  int // 0 means the configured board size
}

// Variants lists every registered variant.
var Variants = []Variant{
	{ID: "floodfill", Title: "Flood Fill"},
	{ID: "floodfill_small", Title: "Flood Fill (6x6)", Size: 6},
	{ID: "floodfill_large", Title: "Flood Fill (14x14)", Size: 14},
}

// Package-level settings, applied by the next Reset.
var (
	configPath       string
	difficultyPreset string
	customConfig     *config.FloodFillConfig
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config file path for subsequent games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for subsequent games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetConfig uses cfg instead of loading one from disk. Pass nil to go back
// to loading.
func SetConfig(cfg *config.FloodFillConfig) {
	customConfig = cfg
}

// SetLogger sets the logger handed to every new session.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadConfig resolves the effective configuration: the explicit config or
// the config file, with the difficulty preset applied on top.
func LoadConfig() (config.FloodFillConfig, error) {
	var cfg config.FloodFillConfig
	if customConfig != nil {
		cfg = *customConfig
	} else {
		loaded, err := config.LoadFloodFill(configPath)
		if err != nil {
			return config.FloodFillConfig{}, err
		}
		cfg = loaded
	}

	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		return config.FloodFillConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// PaletteFromConfig converts configured colors to a Palette.
func PaletteFromConfig(colors []config.PaletteColor) (Palette, error) {
	p := make(Palette, 0, len(colors))
	for _, c := range colors {
		r, g, b, err := c.RGB()
		if err != nil {
			return nil, err
		}
		p = append(p, Swatch{Name: c.Name, R: r, G: g, B: b})
	}
	return p, nil
}

// Game adapts a Session to the platform: it owns the cursor, the selected
// color and the screen layout used to map mouse clicks to cells.
type Game struct {
	variant Variant
	cfg     config.FloodFillConfig
	session *Session
	store   registry.ScoreStore

	cursor   Coord
	selected Color

	screenW int
	screenH int
	layout  layout
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v, cfg: config.DefaultFloodFillConfig()}
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// BindScores connects the game to persistent score storage.
func (g *Game) BindScores(store registry.ScoreStore) {
	g.store = store
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration of the current game.
func (g *Game) Config() config.FloodFillConfig {
	return g.cfg
}

// Reset loads the configuration and starts a fresh random game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultFloodFillConfig()
	}
	g.cfg = cfg

	palette, err := PaletteFromConfig(cfg.Palette)
	if err != nil {
		logger.Warn("using default palette", "error", err)
		palette = DefaultPalette()
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.session = NewSession(g.options(palette, seed))
	g.loadScores()
	if err := g.session.StartNewGame(nil); err != nil {
		logger.Error("cannot start game", "error", err)
	}

	g.cursor = Coord{}
	g.selected = 0
	g.Resize(rc.ScreenW, rc.ScreenH)
}

func (g *Game) options(palette Palette, seed int64) Options {
	size := g.variant.Size
	if size == 0 {
		size = g.cfg.Board.Size
	}
	undos := g.cfg.Scoring.Undos
	if undos == 0 {
		undos = -1 // configured as "no undos"
	}

	opts := Options{
		Size:          size,
		Palette:       palette,
		StartingScore: g.cfg.Scoring.StartingScore,
		Undos:         undos,
		Capacity:      g.cfg.Leaderboard.Capacity,
		Untimed:       !g.cfg.Timer.Enabled,
		Rand:          rand.New(rand.NewSource(seed)),
		Logger:        logger.With("game", g.variant.ID),
	}
	if g.store != nil {
		opts.Recorder = storeRecorder{store: g.store, gameID: g.variant.ID}
	}
	return opts
}

func (g *Game) loadScores() {
	if g.store == nil {
		return
	}
	scores, err := g.store.TopScoreValues(g.variant.ID, g.cfg.Leaderboard.Capacity)
	if err != nil {
		logger.Warn("cannot load scores", "game", g.variant.ID, "error", err)
		return
	}
	g.session.LoadScores(scores)
}

// storeRecorder files won games under a variant ID.
type storeRecorder struct {
	store  registry.ScoreStore
	gameID string
}

func (r storeRecorder) RecordScore(score, moves, elapsed int) error {
	return r.store.SaveWin(r.gameID, score, moves, elapsed)
}

// Resize recomputes the layout for a new screen size. The game continues.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.session != nil {
		g.layout = computeLayout(g.session.Snapshot().Grid.Size(), g.session.Palette().Len(), width, height)
	}
}

// TickInterval returns how often the clock should tick.
func (g *Game) TickInterval() time.Duration {
	if g.cfg.Timer.Interval <= 0 {
		return DefaultTickInterval
	}
	return g.cfg.Timer.Interval
}

// StartClock runs the session clock until ctx is done or stop is called.
// Timer-less configurations still get a clock; its ticks are no-ops.
func (g *Game) StartClock(ctx context.Context, onTick func()) (stop func()) {
	c := StartClock(ctx, g.session, g.TickInterval(), func(TickResult) {
		if onTick != nil {
			onTick()
		}
	})
	return c.Stop
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}
	var notice string

	switch {
	case in.Has(core.ActionNewGame):
		g.handle(g.session.StartNewGame(nil), &notice)
		g.afterBoardSwap()
		return g.result(notice)
	case in.Has(core.ActionRestart):
		_, err := g.session.Restart()
		g.handle(err, &notice)
		g.afterBoardSwap()
		return g.result(notice)
	}

	if in.Has(core.ActionPause) {
		g.session.SetPaused(!g.session.Snapshot().Paused)
	}
	if in.Has(core.ActionClock) {
		_, err := g.session.Tick()
		g.handle(err, &notice)
	}

	g.moveCursor(in)
	g.pickColor(in)

	snap := g.session.Snapshot()
	wantsChange := in.Has(core.ActionConfirm) || in.Has(core.ActionUndo) ||
		in.Has(core.ActionTranspose) || g.clickedCell(in)
	if snap.Paused && wantsChange {
		return g.result(NoticePaused)
	}

	if in.Click != nil {
		if c, ok := g.layout.cellAt(in.Click.X, in.Click.Y); ok {
			g.cursor = c
			g.fill(c, &notice)
		} else if color, ok := g.layout.swatchAt(in.Click.X, in.Click.Y); ok {
			g.selected = color
		}
	}
	if in.Has(core.ActionConfirm) {
		g.fill(g.cursor, &notice)
	}
	if in.Has(core.ActionUndo) {
		_, err := g.session.Undo()
		g.handle(err, &notice)
	}
	if in.Has(core.ActionTranspose) {
		if _, err := g.session.Transpose(); err != nil {
			g.handle(err, &notice)
		} else {
			// Keep the cursor on the same cell contents
			g.cursor = Coord{Row: g.cursor.Col, Col: g.cursor.Row}
		}
	}

	return g.result(notice)
}

func (g *Game) fill(c Coord, notice *string) {
	_, err := g.session.ApplyMove(c, g.selected)
	g.handle(err, notice)
}

// handle turns a session error into a notice. Moves after a win are
// silently ignored.
func (g *Game) handle(err error, notice *string) {
	switch {
	case err == nil, errors.Is(err, ErrGameOver):
	case errors.Is(err, ErrNoUndosRemaining):
		*notice = NoticeNoUndos
	case errors.Is(err, ErrEmptyHistory):
		*notice = NoticeReset
		g.afterBoardSwap()
	default:
		*notice = err.Error()
	}
}

// afterBoardSwap keeps the cursor and layout valid for a new grid.
func (g *Game) afterBoardSwap() {
	size := g.session.Snapshot().Grid.Size()
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, size-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, size-1)
	g.Resize(g.screenW, g.screenH)
}

func (g *Game) moveCursor(in core.InputFrame) {
	size := g.session.Snapshot().Grid.Size()
	if size == 0 {
		return
	}
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, size-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, size-1)
}

func (g *Game) pickColor(in core.InputFrame) {
	n := g.session.Palette().Len()
	switch {
	case in.Color >= 1 && in.Color <= n:
		g.selected = Color(in.Color - 1)
	case in.Has(core.ActionNextColor):
		g.selected = Color((int(g.selected) + 1) % n)
	case in.Has(core.ActionPrevColor):
		g.selected = Color((int(g.selected) + n - 1) % n)
	}
}

func (g *Game) clickedCell(in core.InputFrame) bool {
	if in.Click == nil {
		return false
	}
	_, ok := g.layout.cellAt(in.Click.X, in.Click.Y)
	return ok
}

func (g *Game) result(notice string) core.StepResult {
	return core.StepResult{State: g.State(), Notice: notice}
}

// Cursor returns the cell keyboard fills start from.
func (g *Game) Cursor() Coord {
	return g.cursor
}

// SelectedColor returns the replacement color of the next fill.
func (g *Game) SelectedColor() Color {
	return g.selected
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	snap := g.session.Snapshot()
	won := snap.State == StateWon
	return core.GameState{
		Score:    snap.Score,
		GameOver: won,
		Won:      won,
		Paused:   snap.Paused,
	}
}
