// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"log/slog"

	"github.com/gogpu/picasso"
	"github.com/gogpu/picasso/primitive"
	"github.com/gogpu/picasso/prng"
	"github.com/gogpu/picasso/surface"
)

// Renderer runs renders with a fixed palette, primitive library and
// backend selection.
//
// A Renderer is immutable after New and safe for concurrent use; every
// render owns its generator and surface.
type Renderer struct {
	opts options
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Render validates s, creates its generator and renders.
func (r *Renderer) Render(s Settings) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}
	g, err := prng.New(s.Seed, s.Multiplier, s.Modulus, prng.WithArithmetic(r.opts.arith))
	if err != nil {
		return Result{}, &InvalidParametersError{Field: "generator", Reason: err.Error()}
	}
	return r.RenderWith(g, s.Params)
}

// RenderWith renders p drawing from g. The generator is advanced by the
// number of draws reported in Result.Draws.
func (r *Renderer) RenderWith(g *prng.Generator, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	log := r.logger()

	s, err := r.acquire(p)
	if err != nil {
		if isUnavailable(err) {
			log.Debug("render: no surface backend available", "err", err)
			return Result{Status: Unavailable}, nil
		}
		return Result{}, &SurfaceAcquisitionError{Err: err}
	}
	defer s.Close()

	var rec *surface.Recorder
	if r.opts.recording {
		rec = surface.Record(s)
		s = rec
	}

	start := g.Draws()
	area := primitive.Area{Width: float64(p.Width), Height: float64(p.Height)}
	cfg := primitive.Config{FontSizeFactor: p.FontSizeFactor}
	for i := range p.Iterations {
		if op, err := r.iterate(g, s, area, cfg, p.MaxShadowBlur); err != nil {
			return Result{}, &DrawError{Iteration: i, Op: op, Err: err}
		}
	}

	data, err := s.Encode()
	if err != nil {
		return Result{}, &DrawError{Iteration: -1, Op: "encode", Err: err}
	}

	res := Result{Status: Rendered, Data: data, Draws: g.Draws() - start}
	if rec != nil {
		res.Ops = rec.Ops()
	}
	log.Debug("render: done",
		"width", p.Width, "height", p.Height,
		"iterations", p.Iterations, "draws", res.Draws, "bytes", len(data))
	return res, nil
}

// iterate runs one loop iteration and returns the failing call name on
// error.
func (r *Renderer) iterate(g *prng.Generator, s surface.Surface, area primitive.Area, cfg primitive.Config, maxShadowBlur float64) (string, error) {
	grad, err := s.CreateRadialGradient(
		g.Int(area.Width), g.Int(area.Height), g.Int(area.Width),
		g.Int(area.Width), g.Int(area.Height), g.Int(area.Width),
	)
	if err != nil {
		return "createRadialGradient", err
	}
	for _, offset := range [...]float64{0, 1} {
		i, err := g.Index(r.opts.palette.Len())
		if err != nil {
			return "addColorStop", err
		}
		if err := grad.AddColorStop(offset, r.opts.palette[i]); err != nil {
			return "addColorStop", err
		}
	}
	s.SetFillStyle(grad)

	s.SetShadowBlur(g.Int(maxShadowBlur))

	// An unknown color leaves the shadow color unchanged.
	if i, err := g.Index(r.opts.palette.Len()); err == nil {
		s.SetShadowColor(r.opts.palette[i])
	} else {
		r.logger().Debug("render: shadow color ignored", "err", err)
	}

	i, err := g.Index(r.opts.library.Len())
	if err != nil {
		return "selectPrimitive", err
	}
	prim := r.opts.library[i]
	if err := prim.Draw(g, s, area, cfg); err != nil {
		return prim.Kind().String(), err
	}

	if err := s.Fill(); err != nil {
		return "fill", err
	}
	return "", nil
}

func (r *Renderer) acquire(p Params) (surface.Surface, error) {
	opts := surface.DefaultOptions(p.Width, p.Height)
	if r.opts.backend == "" {
		return r.opts.registry.NewSurface(opts)
	}
	return r.opts.registry.NewSurfaceByName(r.opts.backend, opts)
}

func (r *Renderer) logger() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return picasso.Logger()
}

// isUnavailable reports whether err means no backend can run here, as
// opposed to a backend that failed.
func isUnavailable(err error) bool {
	var unavailable *surface.BackendUnavailableError
	return errors.Is(err, surface.ErrNoBackendAvailable) || errors.As(err, &unavailable)
}

// Render renders s with a Renderer built from opts.
func Render(s Settings, opts ...Option) (Result, error) {
	return New(opts...).Render(s)
}
