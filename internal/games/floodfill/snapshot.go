package floodfill

// GameSnapshot captures everything the renderer and tests need to know
// about a running game.
type GameSnapshot struct {
	Variant  string
	Session  Snapshot
	Palette  Palette
	Cursor   Coord
	Selected Color
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() GameSnapshot {
	snap := GameSnapshot{
		Variant:  g.variant.ID,
		Cursor:   g.cursor,
		Selected: g.selected,
	}
	if g.session != nil {
		snap.Session = g.session.Snapshot()
		snap.Palette = g.session.Palette()
	}
	return snap
}
