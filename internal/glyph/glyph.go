// Package glyph measures and outlines text set in Go Regular.
package glyph

import (
	"math"
	"slices"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/picasso/internal/cache"
	"github.com/gogpu/picasso/surface"
)

var goRegular = sync.OnceValues(func() (*sfnt.Font, error) {
	return sfnt.Parse(goregular.TTF)
})

// glyphKey identifies a glyph outline at one size.
type glyphKey struct {
	idx  sfnt.GlyphIndex
	ppem fixed.Int26_6
}

// outlines is shared by every Face; all faces use the same font.
var outlines = cache.New[glyphKey, []sfnt.Segment](1024)

// Face converts strings to advances and outline paths. It owns an
// sfnt.Buffer, so it is not safe for concurrent use.
type Face struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

// New returns a Face for Go Regular. The font is parsed once per process.
func New() (*Face, error) {
	f, err := goRegular()
	if err != nil {
		return nil, err
	}
	return &Face{font: f}, nil
}

// Advance returns the natural width of text at size pixels, kerning
// included.
func (f *Face) Advance(text string, size float64) (float64, error) {
	var width float64
	err := f.glyphs(text, size, nil, &width)
	return width, err
}

// Outline returns the glyph outlines of text with the alphabetic baseline
// starting at (x, y). Text wider than maxWidth is condensed horizontally
// to fit. Every contour is closed.
func (f *Face) Outline(text string, x, y, size, maxWidth float64) (*surface.Path, error) {
	width, err := f.Advance(text, size)
	if err != nil {
		return nil, err
	}
	scaleX := 1.0
	if width > maxWidth && width > 0 {
		scaleX = maxWidth / width
	}

	ppem := toFixed(size)
	p := surface.NewPath()
	err = f.glyphs(text, size, func(idx sfnt.GlyphIndex, pen float64) error {
		pt := func(q fixed.Point26_6) (float64, float64) {
			return x + (pen+fromFixed(q.X))*scaleX, y + fromFixed(q.Y)
		}
		segs, err := f.load(idx, ppem)
		if err != nil {
			return err
		}
		open := false
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					p.Close()
				}
				p.MoveTo(pt(seg.Args[0]))
				open = true
			case sfnt.SegmentOpLineTo:
				p.LineTo(pt(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				cx, cy := pt(seg.Args[0])
				ex, ey := pt(seg.Args[1])
				p.QuadTo(cx, cy, ex, ey)
			case sfnt.SegmentOpCubeTo:
				c1x, c1y := pt(seg.Args[0])
				c2x, c2y := pt(seg.Args[1])
				ex, ey := pt(seg.Args[2])
				p.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
			}
		}
		if open {
			p.Close()
		}
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// load returns the outline of idx at ppem.
func (f *Face) load(idx sfnt.GlyphIndex, ppem fixed.Int26_6) ([]sfnt.Segment, error) {
	key := glyphKey{idx: idx, ppem: ppem}
	if segs, ok := outlines.Get(key); ok {
		return segs, nil
	}
	segs, err := f.font.LoadGlyph(&f.buf, idx, ppem, nil)
	if err != nil {
		return nil, err
	}
	// LoadGlyph returns a slice backed by f.buf.
	segs = slices.Clone(segs)
	outlines.Set(key, segs)
	return segs, nil
}

// glyphs calls fn for every rune of text with its glyph and pen position,
// applying kerning between pairs. fn may be nil. The final pen position is stored in
// width when it is not nil.
func (f *Face) glyphs(text string, size float64, fn func(idx sfnt.GlyphIndex, pen float64) error, width *float64) error {
	ppem := toFixed(size)
	var (
		pen   fixed.Int26_6
		prev  sfnt.GlyphIndex
		first = true
	)
	for _, r := range text {
		idx, err := f.font.GlyphIndex(&f.buf, r)
		if err != nil {
			return err
		}
		if !first {
			if k, err := f.font.Kern(&f.buf, prev, idx, ppem, font.HintingNone); err == nil {
				pen += k
			}
		}
		first = false

		if fn != nil {
			if err := fn(idx, fromFixed(pen)); err != nil {
				return err
			}
		}
		adv, err := f.font.GlyphAdvance(&f.buf, idx, ppem, font.HintingNone)
		if err != nil {
			return err
		}
		pen += adv
		prev = idx
	}
	if width != nil {
		*width = fromFixed(pen)
	}
	return nil
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
