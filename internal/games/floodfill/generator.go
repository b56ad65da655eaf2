package floodfill

import "math/rand"

// RandomGrid fills a size×size grid with colors drawn independently and
// uniformly from the palette.
func RandomGrid(rng *rand.Rand, size int, palette Palette) Grid {
	g := Grid{size: size, cells: make([]Color, size*size)}
	n := palette.Len()
	for i := range g.cells {
		g.cells[i] = Color(rng.Intn(n))
	}
	return g
}

// Transpose returns the matrix transpose of g: cell (r,c) trades places
// with cell (c,r). Diagonal cells stay where they are.
func Transpose(g Grid) Grid {
	out := g.clone()
	for r := 0; r < g.size; r++ {
		for c := r + 1; c < g.size; c++ {
			a, b := r*g.size+c, c*g.size+r
			out.cells[a], out.cells[b] = g.cells[b], g.cells[a]
		}
	}
	return out
}
