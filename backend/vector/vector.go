// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vector

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/picasso/internal/glyph"
	"github.com/gogpu/picasso/palette"
	"github.com/gogpu/picasso/surface"
)

// Name is the registry name of this backend.
const Name = "svg"

// Priority is the registry priority of this backend.
const Priority = 5

// FontFamily is the font family written on text elements.
const FontFamily = "sans-serif"

var (
	// ErrClosed is returned by drawing calls on a closed surface.
	ErrClosed = errors.New("vector: surface closed")

	// ErrEncoded is returned by drawing calls after Encode.
	ErrEncoded = errors.New("vector: surface already encoded")

	// ErrInvalidSize is returned by New for non-positive dimensions.
	ErrInvalidSize = errors.New("vector: invalid surface size")
)

func init() {
	surface.Register(Name, Priority, Factory, nil)
}

// Factory creates an SVG surface. It satisfies surface.Factory.
func Factory(opts surface.Options) (surface.Surface, error) {
	return New(opts.Width, opts.Height)
}

// Surface is a canvas that writes an SVG document.
type Surface struct {
	surface.State

	buf    bytes.Buffer
	canvas *svg.SVG
	face   *glyph.Face

	gradients int
	filters   map[float64]string

	encoded bool
	closed  bool
}

// New starts a width × height SVG document.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	face, err := glyph.New()
	if err != nil {
		return nil, err
	}
	s := &Surface{
		State:   surface.NewState(width, height),
		face:    face,
		filters: make(map[float64]string),
	}
	s.canvas = svg.New(&s.buf)
	s.canvas.Start(width, height)
	return s, nil
}

// Stroke outlines the current path in black with a 1px line.
func (s *Surface) Stroke() error {
	if err := s.check(); err != nil {
		return err
	}
	if s.Path().IsEmpty() {
		return nil
	}
	d := pathData(s.Path())
	if s.HasShadow() {
		s.canvas.Path(d, `fill="none"`, attr("stroke", s.ShadowColor()), strokeWidth, s.blur())
	}
	s.canvas.Path(d, `fill="none"`, `stroke="#000000"`, strokeWidth)
	return nil
}

// Fill fills the current path with the fill gradient using the nonzero
// rule. Without a fill style the canvas default, opaque black, is used.
// A gradient with no stops paints nothing.
func (s *Surface) Fill() error {
	if err := s.check(); err != nil {
		return err
	}
	if s.Path().IsEmpty() {
		return nil
	}

	paint := `fill="#000000"`
	g := s.FillStyle()
	if g != nil {
		if g.IsEmpty() {
			return nil
		}
		paint = `fill="url(#` + s.gradient(g) + `)"`
	}

	d := pathData(s.Path())
	if s.HasShadow() {
		s.canvas.Path(d, attr("fill", s.ShadowColor()), s.blur())
	}
	s.canvas.Path(d, paint, `fill-rule="nonzero"`)
	return nil
}

// StrokeText writes a stroked text element with its baseline at (x, y).
// Text wider than maxWidth in Go Regular gets textLength = maxWidth.
func (s *Surface) StrokeText(text string, x, y, maxWidth float64) error {
	if err := s.check(); err != nil {
		return err
	}
	if !surface.TextVisible(text, x, y, maxWidth) {
		return nil
	}
	width, err := s.face.Advance(text, s.FontSize())
	if err != nil {
		return err
	}

	attrs := []string{
		`font-family="` + FontFamily + `"`,
		`font-size="` + num(s.FontSize()) + `"`,
		`fill="none"`,
		strokeWidth,
	}
	if width > maxWidth {
		attrs = append(attrs, `textLength="`+num(maxWidth)+`"`, `lengthAdjust="spacingAndGlyphs"`)
	}
	if s.HasShadow() {
		s.text(text, x, y, append(attrs, attr("stroke", s.ShadowColor()), s.blur()))
	}
	s.text(text, x, y, append(attrs, `stroke="#000000"`))
	return nil
}

// Encode closes the document and returns it. Encode may be called more
// than once; drawing after Encode returns ErrEncoded.
func (s *Surface) Encode() ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if !s.encoded {
		s.canvas.End()
		s.encoded = true
	}
	return bytes.Clone(s.buf.Bytes()), nil
}

// Close discards the document. Close is idempotent.
func (s *Surface) Close() error {
	s.closed = true
	s.buf.Reset()
	return nil
}

func (s *Surface) check() error {
	switch {
	case s.closed:
		return ErrClosed
	case s.encoded:
		return ErrEncoded
	}
	return nil
}

const strokeWidth = `stroke-width="1"`

// gradient writes g as a user-space radialGradient definition and returns
// its id.
func (s *Surface) gradient(g *surface.Gradient) string {
	s.gradients++
	id := "g" + strconv.Itoa(s.gradients)

	s.canvas.Def()
	fmt.Fprintf(s.canvas.Writer,
		`<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s" fx="%s" fy="%s" fr="%s">`+"\n",
		id, num(g.X1), num(g.Y1), num(g.R1), num(g.X0), num(g.Y0), num(g.R0))
	for _, st := range g.Stops() {
		fmt.Fprintf(s.canvas.Writer, `<stop offset="%s" stop-color="%s"%s/>`+"\n",
			num(st.Offset), st.Color.Hex(), opacity("stop-opacity", st.Color))
	}
	fmt.Fprintln(s.canvas.Writer, `</radialGradient>`)
	s.canvas.DefEnd()
	return id
}

// blur returns the filter attribute for the current shadow, writing the
// filter definition the first time a sigma is used. The filter region is
// the canvas, which clips the shadow the way a bitmap would.
func (s *Surface) blur() string {
	sigma := s.ShadowSigma()
	id, ok := s.filters[sigma]
	if !ok {
		id = "b" + strconv.Itoa(len(s.filters)+1)
		s.filters[sigma] = id

		s.canvas.Def()
		s.canvas.Filter(id,
			`filterUnits="userSpaceOnUse"`,
			`x="0"`, `y="0"`,
			`width="`+strconv.Itoa(s.Width())+`"`,
			`height="`+strconv.Itoa(s.Height())+`"`)
		s.canvas.FeGaussianBlur(svg.Filterspec{In: "SourceGraphic"}, sigma, sigma)
		s.canvas.Fend()
		s.canvas.DefEnd()
	}
	return `filter="url(#` + id + `)"`
}

func (s *Surface) text(text string, x, y float64, attrs []string) {
	fmt.Fprintf(s.canvas.Writer, `<text x="%s" y="%s" %s>`, num(x), num(y), strings.Join(attrs, " "))
	_ = xml.EscapeText(s.canvas.Writer, []byte(text))
	fmt.Fprintln(s.canvas.Writer, `</text>`)
}

// attr formats a paint attribute for c, adding an opacity attribute when
// c is not opaque.
func attr(name string, c palette.Color) string {
	return name + `="` + c.Hex() + `"` + opacity(name+"-opacity", c)
}

func opacity(name string, c palette.Color) string {
	if c.A == 0xFF {
		return ""
	}
	return " " + name + `="` + num(float64(c.A)/255) + `"`
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000)/1000 + 0
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var _ surface.Surface = (*Surface)(nil)
