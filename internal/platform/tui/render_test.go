package tui

import (
	"regexp"
	"testing"

	"github.com/vovakirdan/tui-floodfill/internal/core"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "plain")
	s.DrawColorText(0, 1, "yellow", core.ColorBrightYellow)
	s.FillRect(core.NewRect(2, 2, 4, 1), core.NewRGB(255, 0, 0))
	s.DrawColorText(3, 2, "[]", core.ColorBrightWhite)

	got := ansi.ReplaceAllString(RenderScreen(s), "")
	if got != s.String() {
		t.Errorf("rendered text = %q, want %q", got, s.String())
	}
}

func TestRenderScreenPlainHasNoEscapes(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")

	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, want %q", got, s.String())
	}
}

func TestCellStyleKey(t *testing.T) {
	a := cellStyle{fg: core.ColorGray, bg: core.NewRGB(1, 2, 3)}
	b := cellStyle{fg: core.ColorGray, bg: core.NewRGB(1, 2, 3)}
	c := cellStyle{fg: core.ColorGray, bg: core.NewRGB(1, 2, 4)}

	if a != b {
		t.Error("equal styles compare unequal")
	}
	if a == c {
		t.Error("different backgrounds compare equal")
	}
}
