package domain

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGB value, as used for dyed leather armor
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB creates a Color from its components
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor parses "#rrggbb" (or the short "#rgb") into a Color
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Hex formats the color as "#rrggbb"
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Int returns the packed 0xRRGGBB value the host stores on leather armor
func (c Color) Int() int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Default leather armor tint when nothing is applied
var DefaultLeatherColor = Color{R: 0xA0, G: 0x65, B: 0x40}
