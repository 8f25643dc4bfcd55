// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/picasso/palette"
)

// Surface is the canvas a render draws on.
//
// Surfaces are NOT thread-safe. A surface belongs to exactly one render and
// must not be reused across renders.
//
// Example usage:
//
//	s, _ := surface.NewSurface(220, 30)
//	defer s.Close()
//
//	g, _ := s.CreateRadialGradient(10, 10, 5, 20, 20, 40)
//	_ = g.AddColorStop(0, palette.MustParseHex("#FF6633"))
//	s.SetFillStyle(g)
//	s.BeginPath()
//	_ = s.Arc(50, 15, 10, 0, math.Pi)
//	_ = s.Stroke()
//	_ = s.Fill()
//	data, _ := s.Encode()
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// CreateRadialGradient returns a gradient between the circle
	// (x0, y0, r0) and the circle (x1, y1, r1). A negative radius is an
	// *IndexSizeError.
	CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*Gradient, error)

	// SetFillStyle sets the gradient used by Fill. Nil is ignored.
	SetFillStyle(g *Gradient)

	// SetShadowBlur sets the shadow blur level. Negative and non-finite
	// values are ignored.
	SetShadowBlur(blur float64)

	// SetShadowColor sets the shadow color.
	SetShadowColor(c palette.Color)

	// SetFont sets the font height in pixels. Non-positive and non-finite
	// values are ignored.
	SetFont(sizePx float64)

	// BeginPath discards the current path.
	BeginPath()

	// MoveTo starts a new subpath.
	MoveTo(x, y float64)

	// Arc adds a clockwise circular arc.
	Arc(x, y, r, startAngle, endAngle float64) error

	// BezierCurveTo adds a cubic Bézier curve.
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)

	// QuadraticCurveTo adds a quadratic Bézier curve.
	QuadraticCurveTo(cx, cy, x, y float64)

	// Ellipse adds a clockwise elliptical arc rotated by rotation radians.
	Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64) error

	// StrokeText outlines text with its alphabetic baseline starting at
	// (x, y), condensed horizontally to fit maxWidth. The current path is
	// not affected.
	StrokeText(text string, x, y, maxWidth float64) error

	// Stroke outlines the current path with the stroke style.
	// The path is kept.
	Stroke() error

	// Fill fills the current path with the fill style using the nonzero
	// rule. The path is kept.
	Fill() error

	// Encode finalizes the surface into its canonical byte representation.
	Encode() ([]byte, error)

	// Close releases all resources associated with the surface.
	// Close is idempotent.
	Close() error
}
