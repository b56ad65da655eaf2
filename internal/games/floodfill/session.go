package floodfill

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Session defaults.
const (
	DefaultGridSize      = 9
	DefaultStartingScore = 500
	DefaultUndos         = 3
)

// State is the session lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateActive
	StateWon
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Options configures a Session. Zero fields take the package defaults.
type Options struct {
	Size          int
	Palette       Palette
	StartingScore int
	Undos         int // negative disables undo
	Capacity      int // leaderboard capacity

	// Untimed disables the score countdown entirely.
	Untimed bool

	// Rand drives random grid generation. Seeded from the clock if nil.
	Rand *rand.Rand

	// Logger receives lifecycle events. Discarded if nil.
	Logger *log.Logger

	// Recorder, if set, is told about every won game.
	Recorder ScoreRecorder
}

// ScoreRecorder persists won games outside the session.
type ScoreRecorder interface {
	RecordScore(score, moves, elapsed int) error
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = DefaultGridSize
	}
	if o.Palette.Len() == 0 {
		o.Palette = DefaultPalette()
	}
	if o.StartingScore <= 0 {
		o.StartingScore = DefaultStartingScore
	}
	switch {
	case o.Undos == 0:
		o.Undos = DefaultUndos
	case o.Undos < 0:
		o.Undos = 0
	}
	if o.Capacity <= 0 {
		o.Capacity = DefaultLeaderboardCapacity
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// MoveResult is returned by ApplyMove.
type MoveResult struct {
	Grid  Grid
	Won   bool
	Score int
	Moves int
	Rank  int // leaderboard rank on a win, 0 otherwise
}

// TickResult is returned by Tick.
type TickResult struct {
	Score   int
	Elapsed int
	Running bool
}

// Snapshot is a consistent read of the whole session.
type Snapshot struct {
	State        State
	Grid         Grid
	Score        int
	Moves        int
	UndosLeft    int
	Elapsed      int
	HistoryLen   int
	TimerRunning bool
	Paused       bool
	TopScores    []int
}

// Session owns one player's game: history, counters, timer state and the
// leaderboard. All methods are safe for concurrent use.
type Session struct {
	mu   sync.Mutex
	opts Options
	log  *log.Logger

	history *History
	board   *Leaderboard

	state   State
	score   int
	moves   int
	undos   int
	elapsed int
	running bool
	paused  bool
}

// NewSession creates a session in the uninitialized state.
func NewSession(opts Options) *Session {
	opts = opts.withDefaults()
	return &Session{
		opts:    opts,
		log:     opts.Logger,
		history: &History{},
		board:   NewLeaderboard(opts.Capacity),
	}
}

// Palette returns the palette the session plays with.
func (s *Session) Palette() Palette {
	return s.opts.Palette
}

// Size returns the grid size of new random games.
func (s *Session) Size() int {
	return s.opts.Size
}

// StartNewGame begins a game on seed, or on a fresh random grid if seed is nil.
func (s *Session) StartNewGame(seed *Grid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var g Grid
	if seed == nil {
		g = RandomGrid(s.opts.Rand, s.opts.Size, s.opts.Palette)
	} else {
		if seed.IsZero() {
			return fmt.Errorf("start game: %w: empty grid", ErrInvalidGrid)
		}
		if err := seed.CheckPalette(s.opts.Palette); err != nil {
			return fmt.Errorf("start game: %w", err)
		}
		g = seed.clone()
	}

	s.reset(g)
	s.log.Info("new game", "size", g.Size(), "colors", s.opts.Palette.Len(), "seeded", seed != nil)
	return nil
}

// reset puts the session in the active state on g. Caller holds mu.
func (s *Session) reset(g Grid) {
	s.history.Init(g)
	s.state = StateActive
	s.score = s.opts.StartingScore
	s.moves = 0
	s.undos = s.opts.Undos
	s.elapsed = 0
	s.running = !s.opts.Untimed
	s.paused = false
}

// Restart replays the current game's original grid.
func (s *Session) Restart() (Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateUninitialized {
		return Grid{}, ErrNotStarted
	}
	original, err := s.history.Original()
	if err != nil {
		return Grid{}, s.fault(err)
	}
	s.reset(original)
	s.log.Debug("restart", "size", original.Size())
	return original, nil
}

// current returns the latest grid. Caller holds mu.
func (s *Session) current() (Grid, error) {
	g, err := s.history.Current()
	if err != nil {
		return Grid{}, s.fault(err)
	}
	return g, nil
}

// fault handles a history consistency failure: it is logged, the session is
// reset onto a fresh random grid, and the error is returned wrapped.
func (s *Session) fault(err error) error {
	s.log.Error("session state corrupted, resetting", "error", err, "moves", s.moves)
	s.reset(RandomGrid(s.opts.Rand, s.opts.Size, s.opts.Palette))
	return fmt.Errorf("session reset: %w", err)
}

// checkPlayable returns an error unless grid changes are allowed. Caller holds mu.
func (s *Session) checkPlayable() error {
	switch s.state {
	case StateUninitialized:
		return ErrNotStarted
	case StateWon:
		return ErrGameOver
	}
	return nil
}

// ApplyMove flood-fills from c with color and records the result.
// Filling with the color already at c is a valid move: the unchanged grid
// is recorded and counted.
func (s *Session) ApplyMove(c Coord, color Color) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPlayable(); err != nil {
		return MoveResult{}, err
	}
	if !s.opts.Palette.Contains(color) {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrInvalidColor, color)
	}
	cur, err := s.current()
	if err != nil {
		return MoveResult{}, err
	}
	if !cur.InBounds(c) {
		return MoveResult{}, fmt.Errorf("%w: %s on %dx%d grid", ErrInvalidCoordinate, c, cur.Size(), cur.Size())
	}

	next := FloodFill(cur, c, color)
	s.history.Push(next)
	s.moves++

	res := MoveResult{Grid: next, Score: s.score, Moves: s.moves}
	if next.IsUniform() {
		s.state = StateWon
		s.running = false
		res.Won = true
		res.Rank = s.board.Record(s.score)
		s.log.Info("game won", "score", s.score, "moves", s.moves, "elapsed", s.elapsed, "rank", res.Rank)
		if s.opts.Recorder != nil {
			if err := s.opts.Recorder.RecordScore(s.score, s.moves, s.elapsed); err != nil {
				s.log.Warn("cannot record score", "error", err)
			}
		}
	}
	return res, nil
}

// Undo reverts the last grid change if undos remain.
func (s *Session) Undo() (Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPlayable(); err != nil {
		return Grid{}, err
	}
	if s.history.Len() == 0 {
		return Grid{}, s.fault(ErrEmptyHistory)
	}
	if s.undos <= 0 || s.history.Len() == 1 {
		return Grid{}, ErrNoUndosRemaining
	}
	g, err := s.history.Undo()
	if err != nil {
		return Grid{}, s.fault(err)
	}
	s.undos--
	return g, nil
}

// Transpose mirrors the current grid across its main diagonal.
// It neither counts as a move nor consumes an undo.
func (s *Session) Transpose() (Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPlayable(); err != nil {
		return Grid{}, err
	}
	cur, err := s.current()
	if err != nil {
		return Grid{}, err
	}
	next := Transpose(cur)
	s.history.Push(next)
	return next, nil
}

// Tick accounts for one elapsed timer interval. While the timer runs the
// score drops by one (never below zero) and the elapsed counter grows.
func (s *Session) Tick() (TickResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateUninitialized {
		return TickResult{}, ErrNotStarted
	}
	live := s.running && !s.paused
	if live {
		if s.score > 0 {
			s.score--
		}
		s.elapsed++
	}
	return TickResult{Score: s.score, Elapsed: s.elapsed, Running: live}, nil
}

// SetPaused stops or resumes the timer without touching the board.
// Pausing a won or unstarted game has no effect.
func (s *Session) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return
	}
	s.paused = paused
}

// LoadScores seeds the leaderboard, e.g. from persisted storage.
func (s *Session) LoadScores(scores []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.Load(scores)
}

// TopScores returns the leaderboard, best first.
func (s *Session) TopScores() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.TopScores()
}

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:        s.state,
		Score:        s.score,
		Moves:        s.moves,
		UndosLeft:    s.undos,
		Elapsed:      s.elapsed,
		HistoryLen:   s.history.Len(),
		TimerRunning: s.running,
		Paused:       s.paused,
		TopScores:    s.board.TopScores(),
	}
	if g, err := s.history.Current(); err == nil {
		snap.Grid = g
	}
	return snap
}
