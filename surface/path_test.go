// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

// sinkLog records PathSink calls as strings.
type sinkLog struct{ calls []string }

func (s *sinkLog) MoveTo(x, y float64) { s.calls = append(s.calls, fmt.Sprintf("M %g %g", x, y)) }
func (s *sinkLog) LineTo(x, y float64) { s.calls = append(s.calls, fmt.Sprintf("L %g %g", x, y)) }
func (s *sinkLog) QuadraticTo(cx, cy, x, y float64) {
	s.calls = append(s.calls, fmt.Sprintf("Q %g %g %g %g", cx, cy, x, y))
}
func (s *sinkLog) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.calls = append(s.calls, fmt.Sprintf("C %g %g %g %g %g %g", c1x, c1y, c2x, c2y, x, y))
}
func (s *sinkLog) ClosePath() { s.calls = append(s.calls, "Z") }

func TestSweep(t *testing.T) {
	tests := []struct {
		start, end float64
		want       float64
	}{
		{0, 2 * math.Pi, 2 * math.Pi},
		{0, 3 * math.Pi, 2 * math.Pi},
		{1, 1 + 4*math.Pi, 2 * math.Pi},
		{0, math.Pi, math.Pi},
		{math.Pi, 0, math.Pi},
		{0, 0, 0},
		{5, 1, 2*math.Pi - 4},
		{0, -2 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := Sweep(tt.start, tt.end); !near(got, tt.want) {
			t.Errorf("Sweep(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestPath_ArcFullCircle(t *testing.T) {
	p := NewPath()
	if err := p.Arc(50, 50, 10, 0, 2*math.Pi); err != nil {
		t.Fatalf("Arc: %v", err)
	}

	want := []Verb{VerbMoveTo, VerbCubicTo, VerbCubicTo, VerbCubicTo, VerbCubicTo}
	if !slices.Equal(p.Verbs(), want) {
		t.Fatalf("Verbs() = %v, want %v", p.Verbs(), want)
	}

	pts := p.Points()
	if !near(pts[0], 60) || !near(pts[1], 50) {
		t.Errorf("start = (%v, %v), want (60, 50)", pts[0], pts[1])
	}
	endX, endY := pts[len(pts)-2], pts[len(pts)-1]
	if !near(endX, 60) || math.Abs(endY-50) > 1e-6 {
		t.Errorf("end = (%v, %v), want (60, 50)", endX, endY)
	}

	minX, minY, maxX, maxY := p.Bounds()
	if math.Abs(minX-40) > 1e-6 || math.Abs(minY-40) > 1e-6 || math.Abs(maxX-60) > 1e-6 || math.Abs(maxY-60) > 1e-6 {
		t.Errorf("Bounds() = (%v, %v, %v, %v), want (40, 40, 60, 60)", minX, minY, maxX, maxY)
	}
}

func TestPath_ArcConnectsToSubpath(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	if err := p.Arc(10, 10, 5, math.Pi/2, math.Pi); err != nil {
		t.Fatalf("Arc: %v", err)
	}

	want := []Verb{VerbMoveTo, VerbLineTo, VerbCubicTo}
	if !slices.Equal(p.Verbs(), want) {
		t.Fatalf("Verbs() = %v, want %v", p.Verbs(), want)
	}
	pts := p.Points()
	if !near(pts[2], 10) || !near(pts[3], 15) {
		t.Errorf("line end = (%v, %v), want (10, 15)", pts[2], pts[3])
	}
}

func TestPath_ZeroSweep(t *testing.T) {
	p := NewPath()
	if err := p.Arc(0, 0, 3, 1, 1); err != nil {
		t.Fatalf("Arc: %v", err)
	}
	if !slices.Equal(p.Verbs(), []Verb{VerbMoveTo}) {
		t.Errorf("Verbs() = %v, want only a move", p.Verbs())
	}
}

func TestPath_NegativeRadius(t *testing.T) {
	tests := []struct {
		name string
		draw func(p *Path) error
		op   string
		val  float64
	}{
		{"arc", func(p *Path) error { return p.Arc(0, 0, -1, 0, 1) }, "arc", -1},
		{"ellipse rx", func(p *Path) error { return p.Ellipse(0, 0, -2, 3, 0, 0, 1) }, "ellipse", -2},
		{"ellipse ry", func(p *Path) error { return p.Ellipse(0, 0, 2, -3, 0, 0, 1) }, "ellipse", -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			err := tt.draw(p)
			var ise *IndexSizeError
			if !errors.As(err, &ise) {
				t.Fatalf("err = %v, want *IndexSizeError", err)
			}
			if ise.Op != tt.op || ise.Value != tt.val {
				t.Errorf("IndexSizeError = %+v, want op %s value %v", ise, tt.op, tt.val)
			}
			if !p.IsEmpty() {
				t.Error("path modified by rejected arc")
			}
		})
	}
}

func TestPath_EllipseRotation(t *testing.T) {
	p := NewPath()
	if err := p.Ellipse(0, 0, 10, 5, math.Pi/2, 0, math.Pi/2); err != nil {
		t.Fatalf("Ellipse: %v", err)
	}
	pts := p.Points()
	if !near(pts[0], 0) || !near(pts[1], 10) {
		t.Errorf("start = (%v, %v), want (0, 10)", pts[0], pts[1])
	}
	endX, endY := pts[len(pts)-2], pts[len(pts)-1]
	if !near(endX, -5) || !near(endY, 0) {
		t.Errorf("end = (%v, %v), want (-5, 0)", endX, endY)
	}
}

func TestPath_NonFiniteIgnored(t *testing.T) {
	p := NewPath()
	p.MoveTo(math.NaN(), 0)
	p.LineTo(0, math.Inf(1))
	p.QuadTo(0, 0, math.NaN(), 1)
	p.CubicTo(0, 0, 0, 0, 0, math.Inf(-1))
	if err := p.Arc(0, 0, math.NaN(), 0, 1); err != nil {
		t.Errorf("Arc with NaN radius = %v, want nil", err)
	}
	if !p.IsEmpty() {
		t.Errorf("Verbs() = %v, want empty", p.Verbs())
	}
}

func TestPath_CurvesWithoutCurrentPoint(t *testing.T) {
	p := NewPath()
	p.QuadTo(1, 2, 3, 4)
	q := NewPath()
	q.CubicTo(5, 6, 7, 8, 9, 10)

	var a, b sinkLog
	p.Walk(&a)
	q.Walk(&b)

	if got := strings.Join(a.calls, "; "); got != "M 1 2; Q 1 2 3 4" {
		t.Errorf("quad walk = %q", got)
	}
	if got := strings.Join(b.calls, "; "); got != "M 5 6; C 5 6 7 8 9 10" {
		t.Errorf("cubic walk = %q", got)
	}
}

func TestPath_Walk(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.Close()
	p.LineTo(3, 3)

	var s sinkLog
	p.Walk(&s)
	want := []string{"M 1 1", "L 2 2", "Z", "L 3 3"}
	if !slices.Equal(s.calls, want) {
		t.Errorf("Walk = %v, want %v", s.calls, want)
	}
}

func TestPath_CloneAndClear(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 2)

	c := p.Clone()
	p.Clear()

	if !p.IsEmpty() {
		t.Error("Clear() left elements")
	}
	if len(c.Verbs()) != 2 {
		t.Errorf("clone Verbs() = %v, want 2 verbs", c.Verbs())
	}
	if x0, y0, x1, y1 := p.Bounds(); x0 != 0 || y0 != 0 || x1 != 0 || y1 != 0 {
		t.Errorf("empty Bounds() = (%v, %v, %v, %v), want zeros", x0, y0, x1, y1)
	}
}
