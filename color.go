package oscgrid

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}

	// Green is the classic phosphor trace color.
	Green = RGB(0.2, 1, 0.2)

	// DarkGreen is a dimmed graticule color for use on black backgrounds.
	DarkGreen = RGB(0, 0.4, 0)
)

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return c.NRGBA()
}

// NRGBA returns the 8-bit, non-premultiplied form of c.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// FromColor converts a standard color.Color to RGBA.
// The result is non-premultiplied.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// ParseHex parses a color in "#rgb", "#rrggbb" or "#rrggbbaa" form.
// The leading '#' is optional.
func ParseHex(s string) (RGBA, error) {
	if s != "" && s[0] != '#' {
		s = "#" + s
	}

	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("oscgrid: parse color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("oscgrid: parse color %q: %w", s, err)
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// Hex is like ParseHex but returns opaque black for malformed input.
func Hex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return Black
	}
	return c
}

// String returns the color in "#rrggbbaa" form.
func (c RGBA) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// to8 maps a [0, 1] component to the nearest 8-bit value.
func to8(v float64) uint8 {
	return uint8(clamp255(math.Round(v * 255)))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
