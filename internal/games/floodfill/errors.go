package floodfill

import "errors"

var (
	// ErrNoUndosRemaining means the undo allowance is spent or there is
	// nothing left to undo. The game state is unchanged.
	ErrNoUndosRemaining = errors.New("floodfill: no undos remaining")

	// ErrInvalidCoordinate means a move referenced a cell off the grid.
	ErrInvalidCoordinate = errors.New("floodfill: coordinate out of bounds")

	// ErrInvalidColor means a color is not part of the session palette.
	ErrInvalidColor = errors.New("floodfill: color not in palette")

	// ErrInvalidGrid means a grid has the wrong shape.
	ErrInvalidGrid = errors.New("floodfill: invalid grid")

	// ErrEmptyHistory signals the history was drained to zero entries.
	// This is an internal consistency fault.
	ErrEmptyHistory = errors.New("floodfill: history is empty")

	// ErrNothingToUndo is returned by History.Undo when only the original
	// grid is left.
	ErrNothingToUndo = errors.New("floodfill: nothing to undo")

	// ErrNotStarted is returned by session operations before the first game.
	ErrNotStarted = errors.New("floodfill: no game in progress")

	// ErrGameOver is returned for grid changes after the game was won.
	ErrGameOver = errors.New("floodfill: game is already won")
)
