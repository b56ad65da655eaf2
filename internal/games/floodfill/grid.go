package floodfill

import (
	"fmt"
	"strings"
)

// Grid is a square board of colors stored in row-major order.
// A Grid is a value: operations that change cells return a new Grid and
// never touch the receiver's backing storage.
type Grid struct {
	size  int
	cells []Color
}

// NewGrid creates a grid from row-major cells. The cells are copied.
func NewGrid(size int, cells []Color) (Grid, error) {
	if size <= 0 {
		return Grid{}, fmt.Errorf("%w: size %d", ErrInvalidGrid, size)
	}
	if len(cells) != size*size {
		return Grid{}, fmt.Errorf("%w: %d cells for size %d", ErrInvalidGrid, len(cells), size)
	}
	g := Grid{size: size, cells: make([]Color, len(cells))}
	copy(g.cells, cells)
	return g, nil
}

// Uniform creates a grid where every cell holds c.
func Uniform(size int, c Color) Grid {
	g := Grid{size: size, cells: make([]Color, size*size)}
	for i := range g.cells {
		g.cells[i] = c
	}
	return g
}

// Size returns the number of cells per axis.
func (g Grid) Size() int {
	return g.size
}

// Len returns the total number of cells.
func (g Grid) Len() int {
	return len(g.cells)
}

// IsZero reports whether g is the zero Grid.
func (g Grid) IsZero() bool {
	return g.size == 0
}

// InBounds returns true if the coordinate lies on the grid.
func (g Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

func (g Grid) index(c Coord) int {
	return c.Row*g.size + c.Col
}

// At returns the color at c. The coordinate must be in bounds.
func (g Grid) At(c Coord) Color {
	return g.cells[g.index(c)]
}

// Cells returns a copy of the row-major cells.
func (g Grid) Cells() []Color {
	out := make([]Color, len(g.cells))
	copy(out, g.cells)
	return out
}

// clone returns a grid with its own backing storage.
func (g Grid) clone() Grid {
	out := Grid{size: g.size, cells: make([]Color, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// With returns a copy of g with the cell at c set to color.
func (g Grid) With(c Coord, color Color) Grid {
	out := g.clone()
	out.cells[out.index(c)] = color
	return out
}

// Equal returns true if both grids have the same size and contents.
func (g Grid) Equal(other Grid) bool {
	if g.size != other.size || len(g.cells) != len(other.cells) {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// IsUniform returns true if every cell equals the first cell's color.
func (g Grid) IsUniform() bool {
	if len(g.cells) == 0 {
		return false
	}
	first := g.cells[0]
	for _, c := range g.cells[1:] {
		if c != first {
			return false
		}
	}
	return true
}

// CheckPalette returns ErrInvalidColor if any cell is outside p.
func (g Grid) CheckPalette(p Palette) error {
	for i, c := range g.cells {
		if !p.Contains(c) {
			return fmt.Errorf("%w: cell %d holds %d", ErrInvalidColor, i, c)
		}
	}
	return nil
}

// ColorCounts returns how many cells hold each palette color.
func (g Grid) ColorCounts(p Palette) []int {
	counts := make([]int, p.Len())
	for _, c := range g.cells {
		if p.Contains(c) {
			counts[c]++
		}
	}
	return counts
}

// String renders the grid as rows of palette indices, e.g. "01\n22".
func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.size; col++ {
			fmt.Fprintf(&sb, "%d", g.cells[r*g.size+col])
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from rows of single-digit palette indices,
// the inverse of String. All rows must have the same length as the row count.
func ParseGrid(rows ...string) (Grid, error) {
	size := len(rows)
	cells := make([]Color, 0, size*size)
	for r, row := range rows {
		if len(row) != size {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidGrid, r, len(row), size)
		}
		for _, ch := range row {
			if ch < '0' || ch > '9' {
				return Grid{}, fmt.Errorf("%w: bad cell %q in row %d", ErrInvalidGrid, ch, r)
			}
			cells = append(cells, Color(ch-'0'))
		}
	}
	return NewGrid(size, cells)
}
