// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render runs the deterministic drawing loop.
//
// A render takes a seeded generator and a parameter set, acquires a
// surface from the backend registry and, for each iteration, sets a random
// radial gradient fill, a random shadow, draws one randomly selected
// primitive and fills the current path. The encoded surface is the render
// output.
//
// # Determinism
//
// For fixed settings the sequence of generator draws, primitive choices and
// surface calls is identical on every run. WithRecording exposes that
// sequence as a list of surface.Op values, which is how tests compare runs
// without depending on pixel output.
//
// # Errors
//
// Parameters are validated before any generator or surface work
// (*InvalidParametersError). When no backend can run on this machine the
// render reports Status Unavailable with a nil error. Other acquisition
// failures are *SurfaceAcquisitionError, and surface errors raised while
// drawing are *DrawError carrying the iteration and the failing call.
//
// # Usage
//
//	import _ "github.com/gogpu/picasso/backend/raster"
//
//	r := render.New()
//	res, err := r.Render(render.Settings{
//	    Seed: 42, Multiplier: 16807, Modulus: 2147483647,
//	    Params: render.Params{Width: 220, Height: 30, Iterations: 20,
//	        FontSizeFactor: 1.5, MaxShadowBlur: 10},
//	})
package render
