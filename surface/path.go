// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"math"
	"slices"
)

// Verb is a path construction command.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// pointCount is the number of coordinate pairs each verb consumes.
var pointCount = [...]int{
	VerbMoveTo:  1,
	VerbLineTo:  1,
	VerbQuadTo:  2,
	VerbCubicTo: 3,
	VerbClose:   0,
}

// PathSink receives path commands. *gg.Context satisfies it.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// Path is a canvas path: a list of subpaths made of lines and Bézier
// curves. Arcs and ellipses are converted to cubic curves on insertion.
//
// Example:
//
//	var p surface.Path
//	p.MoveTo(10, 10)
//	_ = p.Arc(50, 50, 20, 0, math.Pi)
//	p.Walk(dc)
type Path struct {
	verbs  []Verb
	points []float64

	startX, startY float64
	curX, curY     float64
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 16),
		points: make([]float64, 0, 64),
	}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	p.startX, p.startY = x, y
	p.curX, p.curY = x, y
}

// LineTo adds a line from the current point. Without a current point it
// behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	if len(p.verbs) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	p.curX, p.curY = x, y
}

// QuadTo adds a quadratic Bézier curve. Without a current point the
// subpath starts at the control point.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if !finite(cx, cy, x, y) {
		return
	}
	if len(p.verbs) == 0 {
		p.MoveTo(cx, cy)
	}
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, cx, cy, x, y)
	p.curX, p.curY = x, y
}

// CubicTo adds a cubic Bézier curve. Without a current point the subpath
// starts at the first control point.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !finite(c1x, c1y, c2x, c2y, x, y) {
		return
	}
	if len(p.verbs) == 0 {
		p.MoveTo(c1x, c1y)
	}
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	p.curX, p.curY = x, y
}

// Close closes the current subpath.
func (p *Path) Close() {
	if len(p.verbs) == 0 {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
	p.curX, p.curY = p.startX, p.startY
}

// Arc adds a clockwise circular arc around (cx, cy).
func (p *Path) Arc(cx, cy, r, startAngle, endAngle float64) error {
	return p.ellipse("arc", cx, cy, r, r, 0, startAngle, endAngle)
}

// Ellipse adds a clockwise elliptical arc around (cx, cy) with radii rx
// and ry, rotated by rotation radians.
func (p *Path) Ellipse(cx, cy, rx, ry, rotation, startAngle, endAngle float64) error {
	return p.ellipse("ellipse", cx, cy, rx, ry, rotation, startAngle, endAngle)
}

func (p *Path) ellipse(op string, cx, cy, rx, ry, rotation, a0, a1 float64) error {
	if !finite(cx, cy, rx, ry, rotation, a0, a1) {
		return nil
	}
	if rx < 0 {
		return &IndexSizeError{Op: op, Value: rx}
	}
	if ry < 0 {
		return &IndexSizeError{Op: op, Value: ry}
	}

	sweep := Sweep(a0, a1)
	cosR, sinR := math.Cos(rotation), math.Sin(rotation)
	at := func(ux, uy float64) (float64, float64) {
		ex, ey := ux*rx, uy*ry
		return cx + ex*cosR - ey*sinR, cy + ex*sinR + ey*cosR
	}

	sx, sy := at(math.Cos(a0), math.Sin(a0))
	if len(p.verbs) == 0 {
		p.MoveTo(sx, sy)
	} else {
		p.LineTo(sx, sy)
	}
	if sweep == 0 {
		return nil
	}

	const maxAngle = math.Pi / 2
	n := int(math.Ceil(sweep / maxAngle))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	for i := range n {
		t1 := a0 + float64(i)*step
		t2 := t1 + step
		cos1, sin1 := math.Cos(t1), math.Sin(t1)
		cos2, sin2 := math.Cos(t2), math.Sin(t2)

		c1x, c1y := at(cos1-k*sin1, sin1+k*cos1)
		c2x, c2y := at(cos2+k*sin2, sin2-k*cos2)
		ex, ey := at(cos2, sin2)
		p.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
	}
	return nil
}

// Sweep returns the clockwise angular extent from startAngle to endAngle
// the way the canvas computes it: a difference of 2π or more is a full
// turn, anything else is reduced into [0, 2π).
func Sweep(startAngle, endAngle float64) float64 {
	const twoPi = 2 * math.Pi
	d := endAngle - startAngle
	if d >= twoPi {
		return twoPi
	}
	d = math.Mod(d, twoPi)
	if d < 0 {
		d += twoPi
	}
	return d
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.startX, p.startY = 0, 0
	p.curX, p.curY = 0, 0
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb slice. The slice must not be modified.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Points returns the flat coordinate slice. The slice must not be modified.
func (p *Path) Points() []float64 {
	return p.points
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	c := *p
	c.verbs = slices.Clone(p.verbs)
	c.points = slices.Clone(p.points)
	return &c
}

// Walk replays the path into sink.
func (p *Path) Walk(sink PathSink) {
	i := 0
	for _, v := range p.verbs {
		pts := p.points[i : i+2*pointCount[v]]
		switch v {
		case VerbMoveTo:
			sink.MoveTo(pts[0], pts[1])
		case VerbLineTo:
			sink.LineTo(pts[0], pts[1])
		case VerbQuadTo:
			sink.QuadraticTo(pts[0], pts[1], pts[2], pts[3])
		case VerbCubicTo:
			sink.CubicTo(pts[0], pts[1], pts[2], pts[3], pts[4], pts[5])
		case VerbClose:
			sink.ClosePath()
		}
		i += len(pts)
	}
}

// Bounds returns the axis-aligned bounding box of the path's points,
// control points included. Returns zeros if the path is empty.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.points) == 0 {
		return 0, 0, 0, 0
	}

	minX, maxX = p.points[0], p.points[0]
	minY, maxY = p.points[1], p.points[1]
	for i := 2; i < len(p.points); i += 2 {
		minX = min(minX, p.points[i])
		maxX = max(maxX, p.points[i])
		minY = min(minY, p.points[i+1])
		maxY = max(maxY, p.points[i+1])
	}
	return minX, minY, maxX, maxY
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
