// Package picasso renders reproducible canvas proofs for challenge–response
// exchanges.
//
// # Overview
//
// A server hands out per-session rendering parameters (seed, multiplier,
// modulus, canvas size, iteration count). The client regenerates the exact
// same image with a seeded multiplicative congruential generator driving an
// ordered sequence of canvas drawing calls, encodes the surface and returns
// a digest of the bytes. The server computes the same digest and compares.
//
// # Packages
//
//   - prng: the generator and the range mapper
//   - palette: the fixed 50-color table
//   - primitive: arc, text, bezier curve, quadratic curve and ellipse
//   - render: the iteration loop, parameter validation and result type
//   - surface: the canvas interface, path model, backend registry and recorder
//   - backend/raster: software rasterisation with github.com/gogpu/gg
//   - backend/vector: SVG output with github.com/ajstarks/svgo
//   - digest: cyrb53 and BLAKE2b digests
//   - challenge: fetch, batch solve and submit against a challenge server
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/picasso/render"
//	    _ "github.com/gogpu/picasso/backend/raster"
//	)
//
//	res, err := render.New().Render(render.Settings{
//	    Seed: 42, Multiplier: 16807, Modulus: 2147483647,
//	    Params: render.Params{Width: 220, Height: 30, Iterations: 20,
//	        FontSizeFactor: 1.5, MaxShadowBlur: 50},
//	})
//
// # Determinism
//
// Generator draws are strictly ordered. Each render owns its generator and
// surface; batches run renders in parallel but never share mutable state.
// Identical inputs produce identical surface call sequences; identical
// bytes additionally require the same backend and font.
//
// # Logging
//
// picasso is silent by default. Call SetLogger to route diagnostics to a
// [log/slog] handler.
package picasso

// Version is the current version of the library.
const Version = "0.3.0"
