package grad

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Channels are not premultiplied
// by alpha.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NRGBA converts the color to 8-bit non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: byte255(c.R),
		G: byte255(c.G),
		B: byte255(c.B),
		A: byte255(c.A),
	}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	out := Color{A: float64(a) / 65535}
	if a == 0 {
		return out
	}
	// color.Color returns premultiplied channels.
	out.R = float64(r) / float64(a)
	out.G = float64(g) / float64(a)
	out.B = float64(b) / float64(a)
	return out
}

// ParseHex parses a hex color string.
// Supported forms: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA"; the leading
// "#" is optional.
func ParseHex(s string) (Color, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	alpha := 1.0
	switch len(hex) {
	case 4: // RGBA
		n, err := strconv.ParseUint(hex[3:4], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("grad: invalid hex color %q", s)
		}
		alpha = float64(n*17) / 255
		hex = hex[:3]
	case 8: // RRGGBBAA
		n, err := strconv.ParseUint(hex[6:8], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("grad: invalid hex color %q", s)
		}
		alpha = float64(n) / 255
		hex = hex[:6]
	case 3, 6:
		// No alpha digits.
	default:
		return Color{}, fmt.Errorf("grad: invalid hex color %q", s)
	}

	cf, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("grad: invalid hex color %q", s)
	}
	return Color{R: cf.R, G: cf.G, B: cf.B, A: alpha}, nil
}

// Hex parses a hex color string, returning opaque black for invalid
// input. Use ParseHex when the error matters.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		return Color{A: 1}
	}
	return c
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when not fully
// opaque.
func (c Color) Hex() string {
	cf := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
	if c.A >= 1 {
		return cf.Hex()
	}
	return fmt.Sprintf("%s%02x", cf.Hex(), byte255(c.A))
}

// HSV creates an opaque color from hue [0, 360), saturation [0, 1], and
// value [0, 1].
func HSV(h, s, v float64) Color {
	cf := colorful.Hsv(h, s, v)
	return Color{R: cf.R, G: cf.G, B: cf.B, A: 1.0}
}

// HSV returns the hue [0, 360), saturation, and value of the color.
// Alpha is ignored.
func (c Color) HSV() (h, s, v float64) {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hsv()
}

// Premultiply returns a premultiplied color.
func (c Color) Premultiply() Color {
	return Color{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Unpremultiply returns an unpremultiplied color.
func (c Color) Unpremultiply() Color {
	if c.A == 0 {
		return Color{}
	}
	return Color{
		R: c.R / c.A,
		G: c.G / c.A,
		B: c.B / c.A,
		A: c.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// byte255 converts a [0, 1] channel to its rounded 8-bit value.
func byte255(v float64) uint8 {
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

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)
