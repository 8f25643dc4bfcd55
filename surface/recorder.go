// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/gogpu/picasso/palette"
)

// Recording backend registration values. The recording backend is not
// registered automatically; call Register(RecordingName, RecordingPriority,
// RecorderFactory, nil) to make it selectable.
const (
	RecordingName     = "recording"
	RecordingPriority = 1
)

// RecorderFactory creates a standalone Recorder. It satisfies Factory.
func RecorderFactory(opts Options) (Surface, error) {
	return NewRecorder(opts.Width, opts.Height), nil
}

// Op is one recorded surface call.
type Op struct {
	// Name is the canvas method name, e.g. "arc" or "strokeText".
	Name string

	// Args are the numeric arguments in call order.
	Args []float64

	// Text carries non-numeric arguments: the text of strokeText, the
	// color of setShadowColor, the stops of setFillStyle.
	Text string
}

// String formats the op as name(arg arg ...) with an optional quoted text.
func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Name)
	b.WriteByte('(')
	for i, a := range o.Args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
	}
	if o.Text != "" {
		if len(o.Args) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Quote(o.Text))
	}
	b.WriteByte(')')
	return b.String()
}

// Recorder is a Surface that logs every call as an Op.
//
// A standalone Recorder (NewRecorder) keeps canvas state but produces no
// pixels; Encode returns the op log, one op per line. A Recorder wrapping
// another surface (Record) forwards every call and Encode returns the
// wrapped surface's bytes.
type Recorder struct {
	inner Surface
	ops   []Op
}

// NewRecorder creates a standalone recorder for a width × height canvas.
func NewRecorder(width, height int) *Recorder {
	st := NewState(width, height)
	return &Recorder{inner: &stateSurface{State: st}}
}

// Record wraps inner so that every call is logged before being forwarded.
func Record(inner Surface) *Recorder {
	return &Recorder{inner: inner}
}

// Ops returns a copy of the recorded operations.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Log returns the canonical op log, one op per line.
func (r *Recorder) Log() []byte {
	var buf bytes.Buffer
	for _, op := range r.ops {
		buf.WriteString(op.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Unwrap returns the wrapped surface, or nil for a standalone recorder.
func (r *Recorder) Unwrap() Surface {
	if _, ok := r.inner.(*stateSurface); ok {
		return nil
	}
	return r.inner
}

func (r *Recorder) record(name string, text string, args ...float64) {
	r.ops = append(r.ops, Op{Name: name, Args: args, Text: text})
}

func (r *Recorder) Width() int  { return r.inner.Width() }
func (r *Recorder) Height() int { return r.inner.Height() }

func (r *Recorder) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*Gradient, error) {
	r.record("createRadialGradient", "", x0, y0, r0, x1, y1, r1)
	return r.inner.CreateRadialGradient(x0, y0, r0, x1, y1, r1)
}

// SetFillStyle records the gradient geometry and its stops as
// "#RRGGBB@offset" pairs.
func (r *Recorder) SetFillStyle(g *Gradient) {
	if g == nil {
		r.record("setFillStyle", "")
	} else {
		stops := make([]string, 0, len(g.stops))
		for _, s := range g.stops {
			stops = append(stops, s.Color.Hex()+"@"+strconv.FormatFloat(s.Offset, 'g', -1, 64))
		}
		r.record("setFillStyle", strings.Join(stops, ","), g.X0, g.Y0, g.R0, g.X1, g.Y1, g.R1)
	}
	r.inner.SetFillStyle(g)
}

func (r *Recorder) SetShadowBlur(blur float64) {
	r.record("setShadowBlur", "", blur)
	r.inner.SetShadowBlur(blur)
}

func (r *Recorder) SetShadowColor(c palette.Color) {
	r.record("setShadowColor", c.Hex())
	r.inner.SetShadowColor(c)
}

func (r *Recorder) SetFont(sizePx float64) {
	r.record("setFont", "", sizePx)
	r.inner.SetFont(sizePx)
}

func (r *Recorder) BeginPath() {
	r.record("beginPath", "")
	r.inner.BeginPath()
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record("moveTo", "", x, y)
	r.inner.MoveTo(x, y)
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) error {
	r.record("arc", "", x, y, radius, startAngle, endAngle)
	return r.inner.Arc(x, y, radius, startAngle, endAngle)
}

func (r *Recorder) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.record("bezierCurveTo", "", c1x, c1y, c2x, c2y, x, y)
	r.inner.BezierCurveTo(c1x, c1y, c2x, c2y, x, y)
}

func (r *Recorder) QuadraticCurveTo(cx, cy, x, y float64) {
	r.record("quadraticCurveTo", "", cx, cy, x, y)
	r.inner.QuadraticCurveTo(cx, cy, x, y)
}

func (r *Recorder) Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64) error {
	r.record("ellipse", "", x, y, rx, ry, rotation, startAngle, endAngle)
	return r.inner.Ellipse(x, y, rx, ry, rotation, startAngle, endAngle)
}

func (r *Recorder) StrokeText(text string, x, y, maxWidth float64) error {
	r.record("strokeText", text, x, y, maxWidth)
	return r.inner.StrokeText(text, x, y, maxWidth)
}

func (r *Recorder) Stroke() error {
	r.record("stroke", "")
	return r.inner.Stroke()
}

func (r *Recorder) Fill() error {
	r.record("fill", "")
	return r.inner.Fill()
}

// Encode returns the op log for a standalone recorder and the wrapped
// surface's encoding otherwise.
func (r *Recorder) Encode() ([]byte, error) {
	if r.Unwrap() == nil {
		return r.Log(), nil
	}
	return r.inner.Encode()
}

func (r *Recorder) Close() error {
	return r.inner.Close()
}

// stateSurface is a Surface that tracks canvas state and draws nothing.
type stateSurface struct {
	State
}

func (*stateSurface) StrokeText(string, float64, float64, float64) error { return nil }
func (*stateSurface) Stroke() error                                       { return nil }
func (*stateSurface) Fill() error                                         { return nil }
func (*stateSurface) Encode() ([]byte, error)                             { return nil, nil }
func (*stateSurface) Close() error                                        { return nil }

var (
	_ Surface = (*Recorder)(nil)
	_ Surface = (*stateSurface)(nil)
)
