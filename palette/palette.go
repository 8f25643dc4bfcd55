// Package palette holds the fixed color table sampled by a render.
//
// A Palette is an array value: assigning or passing it copies the table, so
// a palette handed to a renderer can never be mutated behind its back and
// may be read from any number of goroutines.
package palette

import (
	"errors"
	"image/color"
	"strconv"
	"strings"
)

// Size is the number of entries in a palette.
const Size = 50

// Color is an opaque sRGB color parsed from a #RRGGBB string.
type Color struct {
	R, G, B, A uint8
}

// Transparent is transparent black, the canvas default shadow color.
var Transparent = Color{}

// Black is opaque black, the canvas default stroke style.
var Black = Color{A: 0xFF}

// ErrInvalidHex is returned by ParseHex for malformed input.
var ErrInvalidHex = errors.New("palette: invalid hex color")

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, ErrInvalidHex
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, ErrInvalidHex
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for static tables.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err.Error() + ": " + s)
	}
	return c
}

// Hex returns the color as "#RRGGBB", upper case.
func (c Color) Hex() string {
	const digits = "0123456789ABCDEF"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0F]
	}
	return string(b)
}

// IsTransparent reports whether the alpha channel is zero.
func (c Color) IsTransparent() bool { return c.A == 0 }

// NRGBA converts to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Palette is a fixed ordered table of colors.
type Palette [Size]Color

// Len returns the number of colors.
func (p Palette) Len() int { return len(p) }

// Lookup returns the color at index i and whether i is in range.
func (p Palette) Lookup(i int) (Color, bool) {
	if i < 0 || i >= len(p) {
		return Color{}, false
	}
	return p[i], true
}

var defaultHex = [Size]string{
	"#FF6633", "#FFB399", "#FF33FF", "#FFFF99", "#00B3E6",
	"#E6B333", "#3366E6", "#999966", "#99FF99", "#B34D4D",
	"#80B300", "#809900", "#E6B3B3", "#6680B3", "#66991A",
	"#FF99E6", "#CCFF1A", "#FF1A66", "#E6331A", "#33FFCC",
	"#66994D", "#B366CC", "#4D8000", "#B33300", "#CC80CC",
	"#66664D", "#991AFF", "#E666FF", "#4DB3FF", "#1AB399",
	"#E666B3", "#33991A", "#CC9999", "#B3B31A", "#00E680",
	"#4D8066", "#809980", "#E6FF80", "#1AFF33", "#999933",
	"#FF3380", "#CCCC00", "#66E64D", "#4D80CC", "#9900B3",
	"#E64D66", "#4DB380", "#FF4D4D", "#99E6E6", "#6666FF",
}

var defaultPalette = func() Palette {
	var p Palette
	for i, h := range defaultHex {
		p[i] = MustParseHex(h)
	}
	return p
}()

// Default returns the canonical palette shared with the verifier.
func Default() Palette { return defaultPalette }
