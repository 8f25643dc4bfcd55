// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the canvas abstraction a render draws on.
//
// Surface is a small subset of the HTML canvas 2D context:
// radial gradients, shadows, paths built from arcs, curves and ellipses,
// stroked text, stroke, fill, and a final encoding step. The same drawing
// sequence can be replayed against:
//
//   - a software rasteriser (backend/raster)
//   - an SVG writer (backend/vector)
//   - a Recorder that logs every call
//   - third-party backends via the registry
//
// # Canvas semantics
//
// Behavior that must be identical on every backend lives here rather than
// in the backends: State tracks fill style, shadow and font; Path builds
// arcs and ellipses the way the canvas does (connecting line from the
// current point, full turn for sweeps of 2π or more, negative radii
// rejected with IndexSizeError). Backends embed State and only implement
// pixel output.
//
// # Registry
//
// Backends register themselves from an init function, in the style of
// database/sql drivers:
//
//	import _ "github.com/gogpu/picasso/backend/raster"
//
//	s, err := surface.NewSurface(220, 30)
//	if errors.Is(err, surface.ErrNoBackendAvailable) {
//	    // nothing can render here
//	}
//
// Absence of a usable backend is observable before any drawing starts.
package surface
