package floodfill

import (
	"fmt"

	"github.com/vovakirdan/tui-floodfill/internal/core"
)

const (
	cellWidth  = 2 // characters per grid cell, keeps cells roughly square
	panelWidth = 18
	hudHeight  = 2
	panelGap   = 2
)

// layout is where the board and palette sit on screen.
type layout struct {
	box      core.Rect // board frame
	board    core.Rect // cell area inside the frame
	panelX   int
	swatches []core.Rect
	width    int // total width of board and panel
	tooSmall bool
}

func computeLayout(size, colors, screenW, screenH int) layout {
	boxW := size*cellWidth + 2
	boxH := size + 2
	total := boxW + panelGap + panelWidth

	x := (screenW - total) / 2
	if x < 0 {
		x = 0
	}

	l := layout{
		box:    core.NewRect(x, hudHeight, boxW, boxH),
		board:  core.NewRect(x+1, hudHeight+1, size*cellWidth, size),
		panelX: x + boxW + panelGap,
		width:  total,
	}
	for i := 0; i < colors; i++ {
		l.swatches = append(l.swatches, core.NewRect(l.panelX, hudHeight+1+i, panelWidth, 1))
	}

	// Room for the board, HUD and the status line under the board
	l.tooSmall = screenW < total || screenH < hudHeight+boxH+2
	return l
}

// cellAt maps a screen position to the grid cell drawn there.
func (l layout) cellAt(x, y int) (Coord, bool) {
	if l.tooSmall || !l.board.Contains(x, y) {
		return Coord{}, false
	}
	return Coord{Row: y - l.board.Y, Col: (x - l.board.X) / cellWidth}, true
}

// swatchAt maps a screen position to the palette entry drawn there.
func (l layout) swatchAt(x, y int) (Color, bool) {
	if l.tooSmall {
		return 0, false
	}
	for i, r := range l.swatches {
		if r.Contains(x, y) {
			return Color(i), true
		}
	}
	return 0, false
}

// CellOrigin returns the screen position of the left half of cell c.
func (g *Game) CellOrigin(c Coord) core.Point {
	return core.Point{X: g.layout.board.X + c.Col*cellWidth, Y: g.layout.board.Y + c.Row}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if g.layout.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.Snapshot()
	g.renderHUD(dst, snap)
	g.renderBoard(dst, snap)
	g.renderPanel(dst, snap)
	g.renderStatus(dst, snap)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, snap GameSnapshot) {
	x := g.layout.box.X
	s := snap.Session

	dst.DrawColorText(x, 0, g.variant.Title, core.ColorBrightWhite)

	stats := fmt.Sprintf("Score %d  Moves %d  Time %s", s.Score, s.Moves, formatElapsed(s.Elapsed))
	statsX := x + g.layout.width - len(stats)
	if statsX <= x+len(g.variant.Title) {
		statsX = x + len(g.variant.Title) + 2
	}
	dst.DrawText(statsX, 0, stats)

	// Undo is greyed out once the allowance is spent
	undo := fmt.Sprintf("Undos %d", s.UndosLeft)
	undoColor := core.ColorDefault
	if s.UndosLeft == 0 || s.State == StateWon {
		undoColor = core.ColorDarkGray
	}
	dst.DrawColorText(x, 1, undo, undoColor)

	if !s.TimerRunning && s.State == StateActive && !s.Paused {
		dst.DrawColorText(x+len(undo)+2, 1, "untimed", core.ColorGray)
	}
}

func (g *Game) renderBoard(dst *core.Screen, snap GameSnapshot) {
	dst.DrawBox(g.layout.box)

	grid := snap.Session.Grid
	for r := 0; r < grid.Size(); r++ {
		for c := 0; c < grid.Size(); c++ {
			at := Coord{Row: r, Col: c}
			sw := snap.Palette.Swatch(grid.At(at))
			o := g.CellOrigin(at)
			dst.FillRect(core.NewRect(o.X, o.Y, cellWidth, 1), core.NewRGB(sw.R, sw.G, sw.B))
		}
	}

	if snap.Session.State != StateActive || grid.Size() == 0 {
		return
	}
	sw := snap.Palette.Swatch(grid.At(snap.Cursor))
	o := g.CellOrigin(snap.Cursor)
	dst.DrawColorText(o.X, o.Y, "[]", contrastColor(core.NewRGB(sw.R, sw.G, sw.B)))
}

func (g *Game) renderPanel(dst *core.Screen, snap GameSnapshot) {
	x := g.layout.panelX
	y := g.layout.box.Y

	dst.DrawColorText(x, y, "Colors", core.ColorBrightWhite)
	for i, r := range g.layout.swatches {
		color := Color(i)
		sw := snap.Palette.Swatch(color)

		marker := " "
		fg := core.ColorDefault
		if color == snap.Selected {
			marker = ">"
			fg = core.ColorBrightYellow
		}
		dst.DrawColorText(r.X, r.Y, fmt.Sprintf("%s%d", marker, i+1), fg)
		dst.FillRect(core.NewRect(r.X+3, r.Y, cellWidth, 1), core.NewRGB(sw.R, sw.G, sw.B))
		dst.DrawColorText(r.X+3+cellWidth+1, r.Y, sw.Name, fg)
	}

	y += len(g.layout.swatches) + 2
	dst.DrawColorText(x, y, "Top scores", core.ColorBrightWhite)
	scores := snap.Session.TopScores
	if len(scores) == 0 {
		dst.DrawColorText(x, y+1, "none yet", core.ColorGray)
		return
	}
	for i, score := range scores {
		dst.DrawText(x, y+1+i, fmt.Sprintf("%d. %d", i+1, score))
	}
}

// renderStatus draws the win and pause messages under the board.
func (g *Game) renderStatus(dst *core.Screen, snap GameSnapshot) {
	x := g.layout.box.X
	y := g.layout.box.Bottom()

	switch {
	case snap.Session.State == StateWon:
		dst.DrawColorText(x, y, fmt.Sprintf("You won! Final score: %d", snap.Session.Score), core.ColorBrightYellow)
		dst.DrawColorText(x, y+1, "R replay  N new game", core.ColorGray)
	case snap.Session.Paused:
		dst.DrawColorText(x, y, "PAUSED", core.ColorYellow)
	}
}

// contrastColor picks a readable foreground for text drawn on bg.
func contrastColor(bg core.RGB) core.Color {
	if bg.Luminance() >= 128 {
		return core.ColorDarkGray
	}
	return core.ColorBrightWhite
}

func formatElapsed(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
