package prng

import (
	"errors"
	"math"
	"testing"
)

func TestMapToRange(t *testing.T) {
	tests := []struct {
		name     string
		raw      int64
		modulus  int64
		bound    float64
		fraction bool
		want     float64
	}{
		{"one maps to zero", 1, 100, 50, false, 0},
		{"floored", 51, 100, 7, false, 3},
		{"fraction kept", 51, 100, 7, true, 3.5},
		{"top of range", 99, 100, 50, false, 49},
		{"zero raw is negative", 0, 100, 50, false, -1},
		{"zero raw fraction", 0, 100, 50, true, -0.5},
		{"zero bound", 42, 100, 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapToRange(tt.raw, tt.modulus, tt.bound, tt.fraction)
			if got != tt.want {
				t.Errorf("MapToRange(%d, %d, %v, %v) = %v, want %v",
					tt.raw, tt.modulus, tt.bound, tt.fraction, got, tt.want)
			}
		})
	}
}

func TestMap_Bounds(t *testing.T) {
	g, _ := New(77, minstdMultiplier, minstdModulus)
	bounds := []float64{1, 5, 50, 220, 2 * math.Pi, 0.5}
	for i := 0; i < 5000; i++ {
		bound := bounds[i%len(bounds)]

		v := g.Int(bound)
		if v < 0 || v >= bound || v != math.Floor(v) {
			t.Fatalf("Int(%v) = %v, want integer in [0, %v)", bound, v, bound)
		}

		f := g.Float(bound)
		if f < 0 || f >= bound {
			t.Fatalf("Float(%v) = %v, want value in [0, %v)", bound, f, bound)
		}
	}
}

func TestIndex(t *testing.T) {
	g, _ := New(3, minstdMultiplier, minstdModulus)
	for i := 0; i < 1000; i++ {
		idx, err := g.Index(50)
		if err != nil {
			t.Fatalf("Index(50) error: %v", err)
		}
		if idx < 0 || idx >= 50 {
			t.Fatalf("Index(50) = %d, outside [0, 50)", idx)
		}
	}
}

func TestIndex_ZeroDraw(t *testing.T) {
	// Seed divisible by modulus: every draw is 0 and maps to -1.
	g, _ := New(13, 5, 13)

	idx, err := g.Index(5)
	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("Index() error = %v, want *IndexError", err)
	}
	if idx != -1 || ie.Index != -1 || ie.Len != 5 {
		t.Errorf("Index() = %d, IndexError = %+v, want -1 / {-1 5}", idx, ie)
	}
	if g.Draws() != 1 {
		t.Errorf("Draws() = %d, want 1 (draw consumed on error)", g.Draws())
	}
	if msg := ie.Error(); msg != "prng: index -1 out of range [0, 5)" {
		t.Errorf("Error() = %q", msg)
	}
}
