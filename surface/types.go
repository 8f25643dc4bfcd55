// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"math"
	"slices"
	"strconv"

	"github.com/gogpu/picasso/palette"
)

// Canvas defaults.
const (
	// DefaultFontSize is the canvas default font height ("10px sans-serif").
	DefaultFontSize = 10.0

	// DefaultLineWidth is the canvas default stroke width.
	DefaultLineWidth = 1.0
)

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Custom options for specific backends.
	Custom map[string]any
}

// DefaultOptions returns Options for the given size.
func DefaultOptions(width, height int) Options {
	return Options{Width: width, Height: height}
}

// ErrNonFinite is returned when a gradient argument is NaN or infinite.
var ErrNonFinite = errors.New("surface: non-finite argument")

// IndexSizeError mirrors the canvas IndexSizeError: a radius or gradient
// offset outside its allowed range.
type IndexSizeError struct {
	Op    string
	Value float64
}

func (e *IndexSizeError) Error() string {
	return "surface: " + e.Op + ": value " + strconv.FormatFloat(e.Value, 'g', -1, 64) + " out of range"
}

// ColorStop is one stop of a gradient.
type ColorStop struct {
	Offset float64
	Color  palette.Color
}

// Gradient is a two-circle radial gradient, as created by
// CreateRadialGradient. Gradients are plain data: backends read them when
// filling.
type Gradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64

	stops []ColorStop
}

// NewRadialGradient validates the circles and returns an empty gradient.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*Gradient, error) {
	for _, v := range [...]float64{x0, y0, r0, x1, y1, r1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}
	if r0 < 0 {
		return nil, &IndexSizeError{Op: "createRadialGradient", Value: r0}
	}
	if r1 < 0 {
		return nil, &IndexSizeError{Op: "createRadialGradient", Value: r1}
	}
	return &Gradient{X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1}, nil
}

// AddColorStop adds a stop at offset in [0, 1]. Stops with equal offsets
// keep their insertion order.
func (g *Gradient) AddColorStop(offset float64, c palette.Color) error {
	if math.IsNaN(offset) || offset < 0 || offset > 1 {
		return &IndexSizeError{Op: "addColorStop", Value: offset}
	}
	i := len(g.stops)
	for i > 0 && g.stops[i-1].Offset > offset {
		i--
	}
	g.stops = slices.Insert(g.stops, i, ColorStop{Offset: offset, Color: c})
	return nil
}

// Stops returns a copy of the color stops sorted by offset.
func (g *Gradient) Stops() []ColorStop {
	return slices.Clone(g.stops)
}

// IsEmpty reports whether the gradient has no stops. The canvas paints
// nothing with such a gradient.
func (g *Gradient) IsEmpty() bool {
	return len(g.stops) == 0
}
