// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"log/slog"

	"github.com/gogpu/picasso/palette"
	"github.com/gogpu/picasso/primitive"
	"github.com/gogpu/picasso/prng"
	"github.com/gogpu/picasso/surface"
)

// Option configures a Renderer.
//
// Example:
//
//	r := render.New(
//	    render.WithBackend("svg"),
//	    render.WithRecording(true),
//	)
type Option func(*options)

type options struct {
	palette   palette.Palette
	library   primitive.Library
	registry  *surface.Registry
	backend   string
	recording bool
	arith     prng.Arithmetic
	logger    *slog.Logger
}

func defaultOptions() options {
	return options{
		palette:  palette.Default(),
		library:  primitive.Default(),
		registry: surface.Default(),
		arith:    prng.Exact,
	}
}

// WithPalette replaces the default 50-color palette.
func WithPalette(p palette.Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithLibrary replaces the default primitive library. An empty library is
// ignored.
func WithLibrary(l primitive.Library) Option {
	return func(o *options) {
		if len(l) > 0 {
			o.library = l
		}
	}
}

// WithRegistry acquires surfaces from r instead of the global registry.
func WithRegistry(r *surface.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithBackend selects a backend by name. The empty name selects the best
// available backend.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithRecording captures every surface call in Result.Ops.
func WithRecording(enabled bool) Option {
	return func(o *options) {
		o.recording = enabled
	}
}

// WithArithmetic sets the generator arithmetic used by Render.
// RenderWith uses the generator it is given.
func WithArithmetic(a prng.Arithmetic) Option {
	return func(o *options) {
		o.arith = a
	}
}

// WithLogger sets the logger for this renderer. By default the renderer
// logs through picasso.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
