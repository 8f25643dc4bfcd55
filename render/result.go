// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"strconv"

	"github.com/gogpu/picasso/surface"
)

// Status is the outcome of a render that returned no error.
type Status int

const (
	// Rendered means Data holds the encoded surface.
	Rendered Status = iota

	// Unavailable means no surface backend can run here. Nothing was
	// drawn and Data is nil.
	Unavailable
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Rendered:
		return "rendered"
	case Unavailable:
		return "unavailable"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

// Result is the output of a render.
type Result struct {
	Status Status

	// Data is the encoded surface.
	Data []byte

	// Draws is the number of generator values consumed.
	Draws uint64

	// Ops is the surface call log, set only with WithRecording.
	Ops []surface.Op
}

// SurfaceAcquisitionError reports a backend that exists but failed to
// create a surface.
type SurfaceAcquisitionError struct {
	Err error
}

func (e *SurfaceAcquisitionError) Error() string {
	return "render: acquire surface: " + e.Err.Error()
}

func (e *SurfaceAcquisitionError) Unwrap() error { return e.Err }

// DrawError reports a surface call that failed during a render.
type DrawError struct {
	// Iteration is the zero-based loop iteration, or -1 for the final
	// encoding.
	Iteration int

	// Op is the failing call, e.g. "createRadialGradient" or "arc".
	Op string

	Err error
}

func (e *DrawError) Error() string {
	if e.Iteration < 0 {
		return "render: " + e.Op + ": " + e.Err.Error()
	}
	return "render: iteration " + strconv.Itoa(e.Iteration) + ": " + e.Op + ": " + e.Err.Error()
}

func (e *DrawError) Unwrap() error { return e.Err }
