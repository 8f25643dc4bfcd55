// Package prng implements the seeded multiplicative congruential generator
// that drives a render, and the range mapper that turns its raw draws into
// coordinates, angles and indices.
//
// A Generator is a pure state machine: every call to Next advances the state
// by current = multiplier * current mod modulus. Draws are causally ordered;
// reordering or parallelising them desynchronises the whole render.
//
// The classic Lehmer parameters (multiplier 16807, modulus 2^31-1) are a
// good choice, but the generator does not judge the quality of the pair it
// is given, only the range of its outputs.
package prng

import (
	"errors"
	"math"
	"math/bits"
	"strconv"
)

// Arithmetic selects how the product multiplier*current is reduced.
type Arithmetic uint8

const (
	// Exact computes the product with a 128-bit intermediate and reduces it
	// without rounding. This is the default.
	Exact Arithmetic = iota

	// Float64 rounds the product to an IEEE-754 double before reducing it
	// with fmod, reproducing verifiers that compute in double precision.
	// Exact and Float64 agree while the product stays below 2^53.
	Float64
)

// String returns the arithmetic mode name.
func (a Arithmetic) String() string {
	switch a {
	case Exact:
		return "exact"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// ArithmeticNames lists the names ParseArithmetic accepts.
var ArithmeticNames = []string{Exact.String(), Float64.String()}

// ParseArithmetic returns the mode named by String.
func ParseArithmetic(name string) (Arithmetic, error) {
	switch name {
	case "exact":
		return Exact, nil
	case "float64":
		return Float64, nil
	}
	return Exact, errors.New("prng: unknown arithmetic " + strconv.Quote(name))
}

// Errors returned by New.
var (
	// ErrInvalidModulus is returned when the modulus is not positive.
	ErrInvalidModulus = errors.New("prng: modulus must be positive")

	// ErrInvalidMultiplier is returned when the multiplier is negative,
	// which would push outputs outside [0, modulus).
	ErrInvalidMultiplier = errors.New("prng: multiplier must not be negative")
)

// Option configures a Generator during creation.
type Option func(*Generator)

// WithArithmetic selects the reduction mode. See Arithmetic.
func WithArithmetic(a Arithmetic) Option {
	return func(g *Generator) {
		g.arith = a
	}
}

// Generator is a multiplicative congruential pseudo-random source.
//
// A Generator is not safe for concurrent use. Each render must own its own
// instance.
type Generator struct {
	current    int64
	multiplier int64
	modulus    int64
	arith      Arithmetic
	draws      uint64
}

// New creates a generator seeded with seed mod modulus. A non-positive
// remainder is lifted by adding modulus once, matching the counterpart
// implementation (so a seed divisible by modulus starts at modulus itself
// and the first draw is 0).
func New(seed, multiplier, modulus int64, opts ...Option) (*Generator, error) {
	if modulus <= 0 {
		return nil, ErrInvalidModulus
	}
	if multiplier < 0 {
		return nil, ErrInvalidMultiplier
	}

	current := seed % modulus
	if current <= 0 {
		current += modulus
	}

	g := &Generator{
		current:    current,
		multiplier: multiplier,
		modulus:    modulus,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Next advances the generator and returns the new state, which always lies
// in [0, modulus).
func (g *Generator) Next() int64 {
	g.draws++
	switch g.arith {
	case Float64:
		g.current = int64(math.Mod(float64(g.multiplier)*float64(g.current), float64(g.modulus)))
	default:
		hi, lo := bits.Mul64(uint64(g.multiplier), uint64(g.current))
		g.current = int64(bits.Rem64(hi, lo, uint64(g.modulus)))
	}
	return g.current
}

// State returns the current state without advancing.
func (g *Generator) State() int64 { return g.current }

// Multiplier returns the recurrence coefficient.
func (g *Generator) Multiplier() int64 { return g.multiplier }

// Modulus returns the recurrence modulus (the "offset parameter" on the wire).
func (g *Generator) Modulus() int64 { return g.modulus }

// Arithmetic returns the reduction mode in use.
func (g *Generator) Arithmetic() Arithmetic { return g.arith }

// Draws returns how many values Next has produced.
func (g *Generator) Draws() uint64 { return g.draws }
