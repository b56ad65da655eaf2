package floodfill

// FloodFill recolors the 4-connected region around seed to target.
//
// The region is every cell reachable from seed through up/down/left/right
// steps over cells that share the seed's color. If the seed already holds
// target, or seed is off the grid, g is returned as is. The input grid is
// never modified.
func FloodFill(g Grid, seed Coord, target Color) Grid {
	if !g.InBounds(seed) {
		return g
	}
	source := g.At(seed)
	if source == target {
		return g
	}

	out := g.clone()
	out.cells[out.index(seed)] = target
	stack := []Coord{seed}

	// A recolored cell no longer matches source, so each cell is pushed once.
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range c.neighbors() {
			if !out.InBounds(n) {
				continue
			}
			i := out.index(n)
			if out.cells[i] != source {
				continue
			}
			out.cells[i] = target
			stack = append(stack, n)
		}
	}

	return out
}

// Region returns the coordinates of the 4-connected same-color region
// containing seed, in discovery order. Returns nil for an off-grid seed.
func Region(g Grid, seed Coord) []Coord {
	if !g.InBounds(seed) {
		return nil
	}
	source := g.At(seed)
	seen := make([]bool, g.Len())
	seen[g.index(seed)] = true

	region := []Coord{seed}
	for i := 0; i < len(region); i++ {
		for _, n := range region[i].neighbors() {
			if !g.InBounds(n) || seen[g.index(n)] || g.At(n) != source {
				continue
			}
			seen[g.index(n)] = true
			region = append(region, n)
		}
	}
	return region
}
