// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/picasso/internal/filter"
	"github.com/gogpu/picasso/internal/glyph"
	"github.com/gogpu/picasso/palette"
	"github.com/gogpu/picasso/surface"
)

// Name is the registry name of this backend.
const Name = "raster"

// Priority is the registry priority of this backend.
const Priority = 10

// DataURLPrefix starts every encoded surface.
const DataURLPrefix = "data:image/png;base64,"

// ErrClosed is returned by drawing calls on a closed surface.
var ErrClosed = errors.New("raster: surface closed")

// ErrInvalidSize is returned by New for non-positive dimensions.
var ErrInvalidSize = errors.New("raster: invalid surface size")

func init() {
	surface.Register(Name, Priority, Factory, nil)
}

// Factory creates a raster surface. It satisfies surface.Factory.
func Factory(opts surface.Options) (surface.Surface, error) {
	return New(opts.Width, opts.Height)
}

// Surface is a canvas backed by an *image.RGBA.
type Surface struct {
	surface.State

	canvas *image.RGBA
	face   *glyph.Face
	closed bool
}

// New creates a transparent width × height surface.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	face, err := glyph.New()
	if err != nil {
		return nil, err
	}
	return &Surface{
		State:  surface.NewState(width, height),
		canvas: image.NewRGBA(image.Rect(0, 0, width, height)),
		face:   face,
	}, nil
}

// Image returns the canvas. It is valid until the next drawing call.
func (s *Surface) Image() *image.RGBA { return s.canvas }

// Stroke outlines the current path in black with a 1px line.
func (s *Surface) Stroke() error {
	if s.closed {
		return ErrClosed
	}
	if s.Path().IsEmpty() {
		return nil
	}
	return s.paint(strokeBrush, func(dc *gg.Context) error {
		dc.SetLineWidth(surface.DefaultLineWidth)
		s.Path().Walk(dc)
		return dc.Stroke()
	})
}

// Fill fills the current path with the fill gradient using the nonzero
// rule. Without a fill style the canvas default, opaque black, is used.
// A gradient with no stops paints nothing.
func (s *Surface) Fill() error {
	if s.closed {
		return ErrClosed
	}
	if s.Path().IsEmpty() {
		return nil
	}

	brush := gg.Brush(strokeBrush)
	if g := s.FillStyle(); g != nil {
		if g.IsEmpty() {
			return nil
		}
		brush = gradientBrush(g)
	}
	return s.paint(brush, func(dc *gg.Context) error {
		dc.SetFillRule(gg.FillRuleNonZero)
		s.Path().Walk(dc)
		return dc.Fill()
	})
}

// StrokeText outlines text with its alphabetic baseline at (x, y).
func (s *Surface) StrokeText(text string, x, y, maxWidth float64) error {
	if s.closed {
		return ErrClosed
	}
	if !surface.TextVisible(text, x, y, maxWidth) {
		return nil
	}
	outline, err := s.face.Outline(text, x, y, s.FontSize(), maxWidth)
	if err != nil {
		return err
	}
	return s.paint(strokeBrush, func(dc *gg.Context) error {
		dc.SetLineWidth(surface.DefaultLineWidth)
		outline.Walk(dc)
		return dc.Stroke()
	})
}

// Encode returns the canvas as a PNG data URL.
func (s *Surface) Encode() ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.canvas); err != nil {
		return nil, err
	}
	out := make([]byte, len(DataURLPrefix)+base64.StdEncoding.EncodedLen(buf.Len()))
	copy(out, DataURLPrefix)
	base64.StdEncoding.Encode(out[len(DataURLPrefix):], buf.Bytes())
	return out, nil
}

// Close releases the canvas. Close is idempotent.
func (s *Surface) Close() error {
	s.closed = true
	s.canvas = nil
	return nil
}

var strokeBrush = gg.Solid(gg.RGBA{A: 1})

// paint draws one shape: first its shadow, if any, then the shape itself,
// each composited source-over onto the canvas.
func (s *Surface) paint(brush gg.Brush, shape func(dc *gg.Context) error) error {
	if s.HasShadow() {
		mask, err := s.layer(gg.Solid(gg.RGBA{A: 1}), shape)
		if err != nil {
			return err
		}
		if sh := filter.Shadow(mask, s.ShadowSigma(), s.ShadowColor()); sh != nil {
			draw.Draw(s.canvas, s.canvas.Bounds(), sh, image.Point{}, draw.Over)
		}
	}

	img, err := s.layer(brush, shape)
	if err != nil {
		return err
	}
	draw.Draw(s.canvas, s.canvas.Bounds(), img, image.Point{}, draw.Over)
	return nil
}

// layer renders shape with brush on a fresh transparent context.
func (s *Surface) layer(brush gg.Brush, shape func(dc *gg.Context) error) (*image.RGBA, error) {
	dc := gg.NewContext(s.Width(), s.Height())
	defer dc.Close()

	dc.SetFillBrush(brush)
	if err := shape(dc); err != nil {
		return nil, err
	}
	return toRGBA(dc.Image()), nil
}

// gradientBrush maps a canvas two-circle gradient onto gg's focal radial
// gradient: the end circle is the gradient circle, the start circle's
// center is the focus.
func gradientBrush(g *surface.Gradient) *gg.RadialGradientBrush {
	b := gg.NewRadialGradientBrush(g.X1, g.Y1, g.R0, g.R1).SetFocus(g.X0, g.Y0)
	for _, st := range g.Stops() {
		b.AddColorStop(st.Offset, rgba(st.Color))
	}
	return b
}

func rgba(c palette.Color) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

var _ surface.Surface = (*Surface)(nil)
