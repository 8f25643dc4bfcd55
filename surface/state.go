// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"math"

	"github.com/gogpu/picasso/palette"
)

// State holds the drawing state shared by every backend: fill style,
// shadow, font and the current path. Backends embed it and implement the
// output methods (StrokeText, Stroke, Fill, Encode, Close).
type State struct {
	width, height int

	fill        *Gradient
	shadowBlur  float64
	shadowColor palette.Color
	fontSize    float64
	path        Path
}

// NewState returns the initial canvas state for a width × height surface.
func NewState(width, height int) State {
	return State{
		width:       width,
		height:      height,
		shadowColor: palette.Transparent,
		fontSize:    DefaultFontSize,
	}
}

// Width returns the surface width in pixels.
func (s *State) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *State) Height() int { return s.height }

// CreateRadialGradient returns a new gradient. It does not change the
// fill style.
func (s *State) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*Gradient, error) {
	return NewRadialGradient(x0, y0, r0, x1, y1, r1)
}

// SetFillStyle sets the fill gradient. Nil is ignored.
func (s *State) SetFillStyle(g *Gradient) {
	if g != nil {
		s.fill = g
	}
}

// SetShadowBlur sets the shadow blur. Negative and non-finite values are
// ignored.
func (s *State) SetShadowBlur(blur float64) {
	if math.IsNaN(blur) || math.IsInf(blur, 0) || blur < 0 {
		return
	}
	s.shadowBlur = blur
}

// SetShadowColor sets the shadow color.
func (s *State) SetShadowColor(c palette.Color) { s.shadowColor = c }

// SetFont sets the font size in pixels. Non-positive and non-finite values
// are ignored.
func (s *State) SetFont(sizePx float64) {
	if math.IsNaN(sizePx) || math.IsInf(sizePx, 0) || sizePx <= 0 {
		return
	}
	s.fontSize = sizePx
}

// BeginPath discards the current path.
func (s *State) BeginPath() { s.path.Clear() }

// MoveTo starts a new subpath.
func (s *State) MoveTo(x, y float64) { s.path.MoveTo(x, y) }

// Arc adds a circular arc to the current path.
func (s *State) Arc(x, y, r, startAngle, endAngle float64) error {
	return s.path.Arc(x, y, r, startAngle, endAngle)
}

// BezierCurveTo adds a cubic Bézier curve to the current path.
func (s *State) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// QuadraticCurveTo adds a quadratic Bézier curve to the current path.
func (s *State) QuadraticCurveTo(cx, cy, x, y float64) {
	s.path.QuadTo(cx, cy, x, y)
}

// Ellipse adds an elliptical arc to the current path.
func (s *State) Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64) error {
	return s.path.Ellipse(x, y, rx, ry, rotation, startAngle, endAngle)
}

// FillStyle returns the current fill gradient, or nil if none was set.
func (s *State) FillStyle() *Gradient { return s.fill }

// ShadowBlur returns the current shadow blur.
func (s *State) ShadowBlur() float64 { return s.shadowBlur }

// ShadowColor returns the current shadow color.
func (s *State) ShadowColor() palette.Color { return s.shadowColor }

// FontSize returns the current font size in pixels.
func (s *State) FontSize() float64 { return s.fontSize }

// Path returns the current path. The path must not be modified.
func (s *State) Path() *Path { return &s.path }

// HasShadow reports whether drawing operations cast a shadow: the blur is
// positive and the shadow color is not transparent.
func (s *State) HasShadow() bool {
	return s.shadowBlur > 0 && !s.shadowColor.IsTransparent()
}

// ShadowSigma returns the Gaussian standard deviation for the current
// blur, which the canvas defines as half the blur value.
func (s *State) ShadowSigma() float64 { return s.shadowBlur / 2 }

// TextVisible reports whether StrokeText with these arguments draws
// anything.
func TextVisible(text string, x, y, maxWidth float64) bool {
	if text == "" || !finite(x, y, maxWidth) {
		return false
	}
	return maxWidth > 0
}
