// Package registry provides a global registry for game factories.
// Puzzle variants register themselves in init() functions, so the platform
// can list and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-floodfill/internal/core"
)

// Game is the interface every playable variant implements.
// Games hold pure logic with no Bubble Tea dependency; the platform maps
// keys and mouse events to actions and draws the screen buffer.
type Game interface {
	// ID returns a unique identifier (e.g. "floodfill_small").
	// Used for CLI arguments and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset sets up a fresh game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and reports the resulting state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, won, paused).
	State() core.GameState
}

// Resizer is implemented by games that can adapt to a new screen size
// without losing their state.
type Resizer interface {
	Resize(width, height int)
}

// Clocked is implemented by games whose state advances on a wall-clock
// timer. StartClock runs the timer until ctx is done or stop is called;
// onTick is invoked from the timer goroutine after every effective tick.
type Clocked interface {
	StartClock(ctx context.Context, onTick func()) (stop func())
}

// ScoreStore is the persistence a game needs for its leaderboard.
type ScoreStore interface {
	SaveWin(gameID string, score, moves, elapsed int) error
	TopScoreValues(gameID string, limit int) ([]int, error)
}

// ScoreBinder is implemented by games that persist their own results.
// BindScores is called before Reset.
type ScoreBinder interface {
	BindScores(store ScoreStore)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Factories must be cheap: the title comes from a throwaway instance
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Title returns the display name of a registered game, or the ID itself
// if it is unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
