package core

import "fmt"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for HUD and overlay text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightWhite
	ColorBrightYellow
	ColorGray
	ColorDarkGray
)

// RGB is a 24-bit color used for cell backgrounds.
// The zero value (Set == false) means "terminal default".
type RGB struct {
	R, G, B uint8
	Set     bool
}

// NewRGB creates a set RGB color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b, Set: true}
}

// Hex returns the color as a #rrggbb string, or "" if unset.
func (c RGB) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance returns the perceived brightness in [0, 255].
// Used to pick a readable foreground on top of a colored cell.
func (c RGB) Luminance() int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
