// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/picasso/palette"
	"github.com/gogpu/picasso/render"
	"github.com/gogpu/picasso/surface"
)

func newSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	if !bytes.HasPrefix(data, []byte(DataURLPrefix)) {
		t.Fatalf("encoded data does not start with %q", DataURLPrefix)
	}
	raw, err := base64.StdEncoding.DecodeString(string(data[len(DataURLPrefix):]))
	if err != nil {
		t.Fatalf("base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("png: %v", err)
	}
	return img
}

func countPainted(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestNew_InvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := New(sz[0], sz[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d, %d) err = %v, want ErrInvalidSize", sz[0], sz[1], err)
		}
	}
}

func TestRegistered(t *testing.T) {
	if !slices.Contains(surface.List(), Name) {
		t.Fatalf("%q not registered: %v", Name, surface.List())
	}
	s, err := surface.NewSurfaceByName(Name, 16, 8)
	if err != nil {
		t.Fatalf("NewSurfaceByName: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*Surface); !ok {
		t.Errorf("surface = %T, want *raster.Surface", s)
	}
}

func TestEncode_Blank(t *testing.T) {
	s := newSurface(t, 220, 30)
	data, err := s.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img := decode(t, data)
	if b := img.Bounds(); b.Dx() != 220 || b.Dy() != 30 {
		t.Errorf("bounds = %v, want 220x30", b)
	}
	if n := countPainted(s.Image()); n != 0 {
		t.Errorf("blank surface has %d painted pixels", n)
	}
}

func TestStroke_Arc(t *testing.T) {
	s := newSurface(t, 40, 40)
	s.BeginPath()
	if err := s.Arc(20, 20, 10, 0, 2*math.Pi); err != nil {
		t.Fatalf("Arc: %v", err)
	}
	if err := s.Stroke(); err != nil {
		t.Fatalf("Stroke: %v", err)
	}

	img := s.Image()
	if countPainted(img) == 0 {
		t.Fatal("stroke painted nothing")
	}
	if c := img.RGBAAt(20, 20); c.A != 0 {
		t.Errorf("circle center = %v, want untouched by stroke", c)
	}
	if img.RGBAAt(29, 20).A == 0 && img.RGBAAt(30, 20).A == 0 {
		t.Error("stroke missed the rightmost point of the circle")
	}
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			t.Fatalf("pixel %d = %v, want black", i/4, img.Pix[i:i+4])
		}
	}
	if s.Path().IsEmpty() {
		t.Error("Stroke must keep the path")
	}
}

func TestFill_Gradient(t *testing.T) {
	s := newSurface(t, 40, 40)
	g, err := s.CreateRadialGradient(20, 20, 0, 20, 20, 20)
	if err != nil {
		t.Fatal(err)
	}
	red := palette.MustParseHex("#FF0000")
	_ = g.AddColorStop(0, red)
	_ = g.AddColorStop(1, red)
	s.SetFillStyle(g)

	s.BeginPath()
	_ = s.Arc(20, 20, 15, 0, 2*math.Pi)
	if err := s.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	if c := s.Image().RGBAAt(20, 20); c.R < 250 || c.G > 5 || c.A < 250 {
		t.Errorf("filled center = %v, want opaque red", c)
	}
	if c := s.Image().RGBAAt(1, 1); c.A != 0 {
		t.Errorf("outside = %v, want transparent", c)
	}
}

func TestFill_EmptyGradientPaintsNothing(t *testing.T) {
	s := newSurface(t, 20, 20)
	g, _ := s.CreateRadialGradient(10, 10, 0, 10, 10, 10)
	s.SetFillStyle(g)
	s.BeginPath()
	_ = s.Arc(10, 10, 8, 0, 2*math.Pi)
	if err := s.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if n := countPainted(s.Image()); n != 0 {
		t.Errorf("painted %d pixels, want 0", n)
	}
}

func TestShadow_HugeBlur(t *testing.T) {
	s := newSurface(t, 220, 30)
	s.SetShadowBlur(1e14)
	s.SetShadowColor(palette.MustParseHex("#FF0000"))
	s.BeginPath()
	_ = s.Arc(110, 15, 10, 0, 2*math.Pi)
	if err := s.Stroke(); err != nil {
		t.Fatalf("Stroke: %v", err)
	}
	if countPainted(s.Image()) == 0 {
		t.Error("stroke under a huge shadow blur painted nothing")
	}
}

func TestShadow(t *testing.T) {
	draw := func(blur float64, c palette.Color) *image.RGBA {
		s := newSurface(t, 60, 60)
		s.SetShadowBlur(blur)
		s.SetShadowColor(c)
		s.BeginPath()
		_ = s.Arc(30, 30, 10, 0, 2*math.Pi)
		if err := s.Stroke(); err != nil {
			t.Fatalf("Stroke: %v", err)
		}
		return s.Image()
	}

	plain := countPainted(draw(0, palette.MustParseHex("#FF0000")))
	transparent := countPainted(draw(6, palette.Transparent))
	shadowed := draw(6, palette.MustParseHex("#FF0000"))

	if transparent != plain {
		t.Errorf("transparent shadow painted %d pixels, want %d", transparent, plain)
	}
	if countPainted(shadowed) <= plain {
		t.Errorf("shadow did not spread: %d <= %d painted pixels", countPainted(shadowed), plain)
	}
	red := 0
	for i := 0; i < len(shadowed.Pix); i += 4 {
		if shadowed.Pix[i] > 0 && shadowed.Pix[i+1] == 0 {
			red++
		}
	}
	if red == 0 {
		t.Error("shadow has no red pixels")
	}
}

func TestStrokeText(t *testing.T) {
	s := newSurface(t, 120, 40)
	s.SetFont(20)
	if err := s.StrokeText("AB", 5, 30, 100); err != nil {
		t.Fatalf("StrokeText: %v", err)
	}
	if countPainted(s.Image()) == 0 {
		t.Error("text painted nothing")
	}

	hidden := newSurface(t, 120, 40)
	if err := hidden.StrokeText("AB", 5, 30, 0); err != nil {
		t.Fatalf("StrokeText: %v", err)
	}
	if n := countPainted(hidden.Image()); n != 0 {
		t.Errorf("maxWidth 0 painted %d pixels", n)
	}
}

func TestClosed(t *testing.T) {
	s, _ := New(10, 10)
	_ = s.Close()
	_ = s.Close()
	if err := s.Stroke(); !errors.Is(err, ErrClosed) {
		t.Errorf("Stroke after Close = %v, want ErrClosed", err)
	}
	if _, err := s.Encode(); !errors.Is(err, ErrClosed) {
		t.Errorf("Encode after Close = %v, want ErrClosed", err)
	}
}

func TestRender_Deterministic(t *testing.T) {
	settings := render.Settings{
		Seed: 7, Multiplier: 16807, Modulus: 2147483647,
		Params: render.Params{Width: 220, Height: 30, Iterations: 12, FontSizeFactor: 1.5, MaxShadowBlur: 6},
	}
	r := render.New(render.WithBackend(Name))

	a, err := r.Render(settings)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, err := r.Render(settings)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(a.Data, b.Data) {
		t.Error("identical settings produced different PNGs")
	}
	if img := decode(t, a.Data); img.Bounds().Dx() != 220 {
		t.Errorf("width = %d, want 220", img.Bounds().Dx())
	}

	settings.Iterations = 0
	blank, err := r.Render(settings)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if bytes.Equal(blank.Data, a.Data) {
		t.Error("blank baseline equals a drawn render")
	}
}
