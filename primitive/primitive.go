// Package primitive implements the drawing primitives a render picks from:
// arc, text, cubic curve, quadratic curve and ellipse.
//
// Every primitive takes all of its geometry from the generator, through
// the same range mapping, so a fixed generator state always yields the
// same surface calls.
package primitive

import (
	"math"
	"strings"

	"github.com/gogpu/picasso/prng"
	"github.com/gogpu/picasso/surface"
)

// Kind identifies a built-in primitive.
type Kind int

// Built-in primitives, in library order.
const (
	Arc Kind = iota
	Text
	BezierCurve
	QuadraticCurve
	Ellipse
)

var kindNames = [...]string{
	Arc:            "arc",
	Text:           "text",
	BezierCurve:    "bezierCurve",
	QuadraticCurve: "quadraticCurve",
	Ellipse:        "ellipse",
}

// String returns the primitive name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Area is the drawable region in pixels.
type Area struct {
	Width, Height float64
}

// Config carries render parameters primitives need beyond the area.
type Config struct {
	// FontSizeFactor divides the area height to get the font size.
	FontSizeFactor float64
}

// Primitive draws one shape onto a surface, consuming generator draws.
type Primitive interface {
	// Kind returns the primitive's identity.
	Kind() Kind

	// Draw issues the primitive's surface calls. Surface errors are
	// returned unchanged.
	Draw(g *prng.Generator, s surface.Surface, area Area, cfg Config) error
}

// Library is an ordered set of primitives. The render selects entries by
// index, so order is part of the output.
type Library []Primitive

// Default returns the built-in library: arc, text, bezierCurve,
// quadraticCurve, ellipse.
func Default() Library {
	return Library{arc{}, text{}, bezierCurve{}, quadraticCurve{}, ellipse{}}
}

// Len returns the number of primitives.
func (l Library) Len() int { return len(l) }

const fullTurn = 2 * math.Pi

type arc struct{}

func (arc) Kind() Kind { return Arc }

func (arc) Draw(g *prng.Generator, s surface.Surface, area Area, _ Config) error {
	s.BeginPath()
	x := g.Int(area.Width)
	y := g.Int(area.Height)
	r := g.Int(min(area.Width, area.Height))
	start := g.Float(fullTurn)
	end := g.Float(fullTurn)
	if err := s.Arc(x, y, r, start, end); err != nil {
		return err
	}
	return s.Stroke()
}

// Word alphabet: code points 65 through 125.
const (
	minRune = 65
	maxRune = 126
)

// maxWordLength bounds the word length draw; lengths fall in [1, maxWordLength).
const maxWordLength = 5

type text struct{}

func (text) Kind() Kind { return Text }

// Draw strokes a random word. It does not begin a new path, so the fill
// that follows in the render loop fills whatever path was current.
func (text) Draw(g *prng.Generator, s surface.Surface, area Area, cfg Config) error {
	n := int(max(1, g.Int(maxWordLength)))
	word := Word(g, n)
	s.SetFont(area.Height / cfg.FontSizeFactor)
	x := g.Int(area.Width)
	y := g.Int(area.Height)
	maxWidth := g.Int(area.Width)
	return s.StrokeText(word, x, y, maxWidth)
}

// Word draws n values and maps each to a character in ['A', '}'].
func Word(g *prng.Generator, n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		r := g.Next() % (maxRune - minRune)
		b.WriteByte(byte(minRune + r))
	}
	return b.String()
}

type bezierCurve struct{}

func (bezierCurve) Kind() Kind { return BezierCurve }

func (bezierCurve) Draw(g *prng.Generator, s surface.Surface, area Area, _ Config) error {
	s.BeginPath()
	s.MoveTo(g.Int(area.Width), g.Int(area.Height))
	c1x, c1y := g.Int(area.Width), g.Int(area.Height)
	c2x, c2y := g.Int(area.Width), g.Int(area.Height)
	x, y := g.Int(area.Width), g.Int(area.Height)
	s.BezierCurveTo(c1x, c1y, c2x, c2y, x, y)
	return s.Stroke()
}

type quadraticCurve struct{}

func (quadraticCurve) Kind() Kind { return QuadraticCurve }

func (quadraticCurve) Draw(g *prng.Generator, s surface.Surface, area Area, _ Config) error {
	s.BeginPath()
	s.MoveTo(g.Int(area.Width), g.Int(area.Height))
	cx, cy := g.Int(area.Width), g.Int(area.Height)
	x, y := g.Int(area.Width), g.Int(area.Height)
	s.QuadraticCurveTo(cx, cy, x, y)
	return s.Stroke()
}

type ellipse struct{}

func (ellipse) Kind() Kind { return Ellipse }

func (ellipse) Draw(g *prng.Generator, s surface.Surface, area Area, _ Config) error {
	s.BeginPath()
	x := g.Int(area.Width)
	y := g.Int(area.Height)
	rx := g.Int(math.Floor(area.Width / 2))
	ry := g.Int(math.Floor(area.Height / 2))
	rotation := g.Float(fullTurn)
	start := g.Float(fullTurn)
	end := g.Float(fullTurn)
	if err := s.Ellipse(x, y, rx, ry, rotation, start, end); err != nil {
		return err
	}
	return s.Stroke()
}
