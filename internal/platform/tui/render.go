package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-floodfill/internal/core"
)

// fgColors maps core.Color to lipgloss foreground colors.
var fgColors = map[core.Color]lipgloss.TerminalColor{
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorGray:         lipgloss.Color("245"),
	core.ColorDarkGray:     lipgloss.Color("236"),
}

// cellStyle is the style key of a run of cells.
type cellStyle struct {
	fg core.Color
	bg core.RGB
}

// style builds the lipgloss style for a run. Backgrounds are truecolor;
// lipgloss degrades them on terminals with fewer colors.
func (cs cellStyle) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg, ok := fgColors[cs.fg]; ok {
		s = s.Foreground(fg)
	}
	if cs.bg.Set {
		s = s.Background(lipgloss.Color(cs.bg.Hex()))
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.Fg, bg: cell.Bg}

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(key.style().Render(run.String()))
		}
	}
	return sb.String()
}
