package prng

import (
	"math"
	"strconv"
)

// MapToRange scales a raw draw into [0, bound).
//
// The draw is normalised as (raw-1)/modulus, so raw = 0 yields a slightly
// negative value (and -1 after flooring). Verifiers rely on this exact
// arithmetic; it is not clamped.
//
// When allowFraction is false the result is floored and therefore always
// integer-valued.
func MapToRange(raw, modulus int64, bound float64, allowFraction bool) float64 {
	t := float64(raw-1) / float64(modulus)
	if allowFraction {
		return t * bound
	}
	return math.Floor(t * bound)
}

// Int draws the next value and maps it into [0, bound), floored.
func (g *Generator) Int(bound float64) float64 {
	return MapToRange(g.Next(), g.modulus, bound, false)
}

// Float draws the next value and maps it into [0, bound) without flooring.
func (g *Generator) Float(bound float64) float64 {
	return MapToRange(g.Next(), g.modulus, bound, true)
}

// Index draws the next value and maps it to an index into a table of n
// entries. The draw is always consumed; an *IndexError is returned when
// the mapped value falls outside [0, n), which only happens for raw = 0.
func (g *Generator) Index(n int) (int, error) {
	v := g.Int(float64(n))
	if v < 0 || v >= float64(n) {
		return int(v), &IndexError{Index: int(v), Len: n}
	}
	return int(v), nil
}

// IndexError reports a mapped index outside its table.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return "prng: index " + strconv.Itoa(e.Index) + " out of range [0, " + strconv.Itoa(e.Len) + ")"
}
