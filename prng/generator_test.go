package prng

import (
	"errors"
	"testing"
)

const (
	minstdMultiplier = 16807
	minstdModulus    = 2147483647
)

func TestNew_InvalidParameters(t *testing.T) {
	tests := []struct {
		name       string
		multiplier int64
		modulus    int64
		want       error
	}{
		{"zero modulus", 16807, 0, ErrInvalidModulus},
		{"negative modulus", 16807, -7, ErrInvalidModulus},
		{"negative multiplier", -3, 7, ErrInvalidMultiplier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(1, tt.multiplier, tt.modulus)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
			if g != nil {
				t.Error("New() should return nil generator on error")
			}
		})
	}
}

func TestNew_InitialState(t *testing.T) {
	tests := []struct {
		seed    int64
		modulus int64
		want    int64
	}{
		{1, 7, 1},
		{10, 7, 3},
		{-5, 7, 2},  // truncated remainder -5, lifted by 7
		{0, 7, 7},   // non-positive remainder lifted to modulus
		{14, 7, 7},  // divisible seed behaves like zero
		{-14, 7, 7}, // negative divisible seed as well
	}
	for _, tt := range tests {
		g, err := New(tt.seed, 3, tt.modulus)
		if err != nil {
			t.Fatalf("New(%d) error: %v", tt.seed, err)
		}
		if got := g.State(); got != tt.want {
			t.Errorf("New(%d, mod %d).State() = %d, want %d", tt.seed, tt.modulus, got, tt.want)
		}
	}
}

// TestNext_Lehmer checks the classic MINSTD sequence from seed 1.
func TestNext_Lehmer(t *testing.T) {
	g, err := New(1, minstdMultiplier, minstdModulus)
	if err != nil {
		t.Fatal(err)
	}

	want := []int64{16807, 282475249, 1622650073, 984943658, 1144108930, 470211272}
	for i, w := range want {
		if got := g.Next(); got != w {
			t.Errorf("draw %d = %d, want %d", i, got, w)
		}
	}
	if g.Draws() != uint64(len(want)) {
		t.Errorf("Draws() = %d, want %d", g.Draws(), len(want))
	}
}

func TestNext_Bounds(t *testing.T) {
	params := []struct {
		seed, multiplier, modulus int64
	}{
		{1, minstdMultiplier, minstdModulus},
		{987654321, 48271, minstdModulus},
		{42, 6364136223846793005, 9223372036854775783},
		{4, 2, 16}, // non-prime modulus, reaches 0 after two draws
		{0, 5, 13},
		{7, 0, 13}, // degenerate multiplier collapses to 0
	}
	for _, p := range params {
		g, err := New(p.seed, p.multiplier, p.modulus)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 2000; i++ {
			v := g.Next()
			if v < 0 || v >= p.modulus {
				t.Fatalf("params %+v draw %d = %d, outside [0, %d)", p, i, v, p.modulus)
			}
		}
	}
}

func TestNext_Deterministic(t *testing.T) {
	a, _ := New(123456, 48271, minstdModulus)
	b, _ := New(123456, 48271, minstdModulus)
	for i := 0; i < 1000; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d diverged: %d != %d", i, x, y)
		}
	}
}

func TestNext_ZeroAfterDivisibleSeed(t *testing.T) {
	g, _ := New(21, 5, 7)
	for i := 0; i < 5; i++ {
		if v := g.Next(); v != 0 {
			t.Errorf("draw %d = %d, want 0", i, v)
		}
	}
}

func TestArithmetic_AgreeBelowDoublePrecision(t *testing.T) {
	exact, _ := New(2024, minstdMultiplier, minstdModulus)
	float, _ := New(2024, minstdMultiplier, minstdModulus, WithArithmetic(Float64))

	if float.Arithmetic() != Float64 {
		t.Fatalf("Arithmetic() = %v, want %v", float.Arithmetic(), Float64)
	}
	for i := 0; i < 5000; i++ {
		if x, y := exact.Next(), float.Next(); x != y {
			t.Fatalf("draw %d: exact %d != float64 %d", i, x, y)
		}
	}
}

func TestArithmetic_String(t *testing.T) {
	tests := map[Arithmetic]string{Exact: "exact", Float64: "float64", Arithmetic(9): "unknown"}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Arithmetic(%d).String() = %q, want %q", a, got, want)
		}
	}
}

func TestParseArithmetic(t *testing.T) {
	for _, name := range ArithmeticNames {
		a, err := ParseArithmetic(name)
		if err != nil || a.String() != name {
			t.Errorf("ParseArithmetic(%q) = %v, %v", name, a, err)
		}
	}
	if _, err := ParseArithmetic("float32"); err == nil {
		t.Error("ParseArithmetic accepted float32")
	}
}

func TestAccessors(t *testing.T) {
	g, _ := New(9, 16807, 101)
	if g.Multiplier() != 16807 {
		t.Errorf("Multiplier() = %d, want 16807", g.Multiplier())
	}
	if g.Modulus() != 101 {
		t.Errorf("Modulus() = %d, want 101", g.Modulus())
	}
	if g.Arithmetic() != Exact {
		t.Errorf("Arithmetic() = %v, want exact", g.Arithmetic())
	}
}

func BenchmarkNext(b *testing.B) {
	g, _ := New(1, minstdMultiplier, minstdModulus)
	b.ReportAllocs()
	for b.Loop() {
		g.Next()
	}
}
