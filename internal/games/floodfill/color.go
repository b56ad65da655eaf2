package floodfill

import (
	"fmt"
	"strings"
)

// Color is an index into a Palette. Grids only ever hold indices that the
// session's palette defines.
type Color uint8

// Colors of the default palette, in palette order.
const (
	White Color = iota
	Black
	Red
	Green
	Blue
)

// Swatch is a named palette entry with a fixed RGB value.
type Swatch struct {
	Name    string
	R, G, B uint8
}

// Hex returns the swatch color as #rrggbb.
func (s Swatch) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", s.R, s.G, s.B)
}

// Palette is the closed set of colors a game is played with.
type Palette []Swatch

// DefaultPalette returns the five classic colors.
func DefaultPalette() Palette {
	return Palette{
		{Name: "white", R: 255, G: 255, B: 255},
		{Name: "black", R: 0, G: 0, B: 0},
		{Name: "red", R: 255, G: 0, B: 0},
		{Name: "green", R: 0, G: 255, B: 0},
		{Name: "blue", R: 0, G: 0, B: 255},
	}
}

// Len returns the number of colors in the palette.
func (p Palette) Len() int {
	return len(p)
}

// Contains reports whether c is a member of the palette.
func (p Palette) Contains(c Color) bool {
	return int(c) < len(p)
}

// Swatch returns the entry for c. Unknown colors yield a zero swatch.
func (p Palette) Swatch(c Color) Swatch {
	if !p.Contains(c) {
		return Swatch{Name: "unknown"}
	}
	return p[c]
}

// Name returns the display name of c.
func (p Palette) Name(c Color) string {
	return p.Swatch(c).Name
}

// Lookup finds a color by name (case-insensitive) or by 1-based slot number.
func (p Palette) Lookup(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, sw := range p {
		if strings.ToLower(sw.Name) == s {
			return Color(i), true
		}
	}
	var slot int
	if _, err := fmt.Sscanf(s, "%d", &slot); err == nil && slot >= 1 && slot <= len(p) {
		return Color(slot - 1), true
	}
	return 0, false
}

// Colors returns every color of the palette in order.
func (p Palette) Colors() []Color {
	colors := make([]Color, len(p))
	for i := range p {
		colors[i] = Color(i)
	}
	return colors
}
