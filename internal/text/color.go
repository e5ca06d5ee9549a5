package text

import (
	"fmt"
	"strings"

	"github.com/osse101/itemkit/internal/domain"
)

// Color is a text color: one of the sixteen named chat colors or an arbitrary RGB value.
// The zero value means "no color" and renders with the host default.
type Color struct {
	rgb  domain.Color
	name string
	set  bool
}

func named(name string, r, g, b uint8) Color {
	return Color{rgb: domain.RGB(r, g, b), name: name, set: true}
}

// Named chat colors
var (
	Black       = named("black", 0x00, 0x00, 0x00)
	DarkBlue    = named("dark_blue", 0x00, 0x00, 0xAA)
	DarkGreen   = named("dark_green", 0x00, 0xAA, 0x00)
	DarkAqua    = named("dark_aqua", 0x00, 0xAA, 0xAA)
	DarkRed     = named("dark_red", 0xAA, 0x00, 0x00)
	DarkPurple  = named("dark_purple", 0xAA, 0x00, 0xAA)
	Gold        = named("gold", 0xFF, 0xAA, 0x00)
	Gray        = named("gray", 0xAA, 0xAA, 0xAA)
	DarkGray    = named("dark_gray", 0x55, 0x55, 0x55)
	Blue        = named("blue", 0x55, 0x55, 0xFF)
	Green       = named("green", 0x55, 0xFF, 0x55)
	Aqua        = named("aqua", 0x55, 0xFF, 0xFF)
	Red         = named("red", 0xFF, 0x55, 0x55)
	LightPurple = named("light_purple", 0xFF, 0x55, 0xFF)
	Yellow      = named("yellow", 0xFF, 0xFF, 0x55)
	White       = named("white", 0xFF, 0xFF, 0xFF)
)

var namedColors = []Color{
	Black, DarkBlue, DarkGreen, DarkAqua, DarkRed, DarkPurple, Gold, Gray,
	DarkGray, Blue, Green, Aqua, Red, LightPurple, Yellow, White,
}

// RGB creates an unnamed color
func RGB(c domain.Color) Color {
	return Color{rgb: c, set: true}
}

// ParseColor accepts a named color ("gold", "dark_red") or a hex value ("#ff8800")
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := domain.ParseColor(s)
		if err != nil {
			return Color{}, err
		}
		return RGB(c), nil
	}
	lower := strings.ToLower(s)
	for _, c := range namedColors {
		if c.name == lower {
			return c, nil
		}
	}
	return Color{}, fmt.Errorf("%w: %q", domain.ErrInvalidColor, s)
}

// IsSet reports whether the color carries a value
func (c Color) IsSet() bool { return c.set }

// Value returns the RGB value of the color
func (c Color) Value() domain.Color { return c.rgb }

// Name returns the chat color name, or "" for RGB colors
func (c Color) Name() string { return c.name }

func (c Color) String() string {
	switch {
	case !c.set:
		return "none"
	case c.name != "":
		return c.name
	default:
		return c.rgb.Hex()
	}
}
