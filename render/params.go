// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"math"
)

// Params are the per-render drawing parameters.
type Params struct {
	// Width and Height are the surface size in pixels.
	Width, Height int

	// Iterations is the number of gradient/shadow/primitive/fill rounds.
	Iterations int

	// FontSizeFactor divides Height to get the text size.
	FontSizeFactor float64

	// MaxShadowBlur bounds the per-iteration shadow blur.
	MaxShadowBlur float64
}

// Settings are Params plus the generator parameters.
type Settings struct {
	Seed       int64
	Multiplier int64

	// Modulus is the generator modulus, also the range mapper divisor.
	Modulus int64

	Params
}

// ErrInvalidParameters matches every *InvalidParametersError via errors.Is.
var ErrInvalidParameters = errors.New("render: invalid parameters")

// InvalidParametersError reports the first parameter that failed
// validation.
type InvalidParametersError struct {
	Field  string
	Reason string
}

func (e *InvalidParametersError) Error() string {
	return "render: invalid " + e.Field + ": " + e.Reason
}

// Is reports whether target is ErrInvalidParameters.
func (e *InvalidParametersError) Is(target error) bool {
	return target == ErrInvalidParameters
}

// Validate checks the drawing parameters.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0:
		return &InvalidParametersError{Field: "width", Reason: "must be positive"}
	case p.Height <= 0:
		return &InvalidParametersError{Field: "height", Reason: "must be positive"}
	case p.Iterations < 0:
		return &InvalidParametersError{Field: "iterations", Reason: "must not be negative"}
	case !isFinite(p.FontSizeFactor) || p.FontSizeFactor <= 0:
		return &InvalidParametersError{Field: "fontSizeFactor", Reason: "must be finite and positive"}
	case !isFinite(p.MaxShadowBlur) || p.MaxShadowBlur < 0:
		return &InvalidParametersError{Field: "maxShadowBlur", Reason: "must be finite and not negative"}
	}
	return nil
}

// Validate checks the generator and drawing parameters.
func (s Settings) Validate() error {
	switch {
	case s.Modulus <= 0:
		return &InvalidParametersError{Field: "modulus", Reason: "must be positive"}
	case s.Multiplier < 0:
		return &InvalidParametersError{Field: "multiplier", Reason: "must not be negative"}
	}
	return s.Params.Validate()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
