package floodfill

// History is the ordered log of grid snapshots for one game.
// Entry 0 is the original grid; the last entry is the current one.
type History struct {
	grids []Grid
}

// NewHistory creates a history holding only the original grid.
func NewHistory(original Grid) *History {
	h := &History{}
	h.Init(original)
	return h
}

// Init resets the history to a single entry.
func (h *History) Init(original Grid) {
	h.grids = []Grid{original}
}

// Push appends a snapshot.
func (h *History) Push(g Grid) {
	h.grids = append(h.grids, g)
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	return len(h.grids)
}

// Current returns the latest snapshot.
func (h *History) Current() (Grid, error) {
	if len(h.grids) == 0 {
		return Grid{}, ErrEmptyHistory
	}
	return h.grids[len(h.grids)-1], nil
}

// Original returns the first snapshot.
func (h *History) Original() (Grid, error) {
	if len(h.grids) == 0 {
		return Grid{}, ErrEmptyHistory
	}
	return h.grids[0], nil
}

// Undo drops the latest snapshot and returns the new current one.
// With a single snapshot left it returns ErrNothingToUndo and keeps it.
func (h *History) Undo() (Grid, error) {
	switch len(h.grids) {
	case 0:
		return Grid{}, ErrEmptyHistory
	case 1:
		return h.grids[0], ErrNothingToUndo
	}
	h.grids[len(h.grids)-1] = Grid{}
	h.grids = h.grids[:len(h.grids)-1]
	return h.grids[len(h.grids)-1], nil
}
