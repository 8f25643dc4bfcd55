package challenge

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"github.com/gogpu/picasso"
	"github.com/gogpu/picasso/digest"
	"github.com/gogpu/picasso/internal/parallel"
	"github.com/gogpu/picasso/render"
)

// LegacySentinel is the text digested in place of render output when no
// backend is available and WithLegacySentinel is set.
const LegacySentinel = "unknown"

// Option configures a Solver.
type Option func(*solverOptions)

type solverOptions struct {
	renderer *render.Renderer
	digester digest.Digester
	workers  int
	legacy   bool
	logger   *slog.Logger
}

// WithRenderer sets the renderer. The default is render.New().
func WithRenderer(r *render.Renderer) Option {
	return func(o *solverOptions) {
		if r != nil {
			o.renderer = r
		}
	}
}

// WithDigester sets the digest function. The default is digest.Default().
func WithDigester(d digest.Digester) Option {
	return func(o *solverOptions) {
		if d != nil {
			o.digester = d
		}
	}
}

// WithWorkers sets how many challenges are rendered at once.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *solverOptions) {
		o.workers = n
	}
}

// WithLegacySentinel makes a challenge without an available backend
// answer with the digest of LegacySentinel instead of being left out of
// the response.
func WithLegacySentinel(enabled bool) Option {
	return func(o *solverOptions) {
		o.legacy = enabled
	}
}

// WithLogger sets the logger. The default is picasso.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *solverOptions) {
		o.logger = l
	}
}

// Solver renders and digests batches of challenges.
//
// Every challenge gets its own generator and surface, so challenges run
// concurrently and one failure never affects its siblings. A Solver is
// safe for concurrent use.
type Solver struct {
	opts solverOptions
}

// NewSolver creates a Solver.
func NewSolver(opts ...Option) *Solver {
	o := solverOptions{
		renderer: render.New(),
		digester: digest.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver{opts: o}
}

// Solve renders every challenge in in and returns the digests with a
// per-challenge report. A challenge that does not decode is reported with
// a *render.InvalidParametersError and left out of the digests. Challenges not started when ctx is done are
// reported with the context error.
func (s *Solver) Solve(ctx context.Context, in Input) (Response, Report) {
	ids := make([]string, 0, len(in.Challenges))
	for id := range in.Challenges {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var (
		mu      sync.Mutex
		results = make(map[string]string, len(ids))
	)
	outcomes := make([]Outcome, len(ids))
	started := make([]bool, len(ids))

	tasks := make([]parallel.Task, len(ids))
	for i, id := range ids {
		tasks[i] = func(context.Context) {
			started[i] = true
			out := s.solveOne(id, in.Challenges[id])
			outcomes[i] = out
			if out.Err == nil && out.Digest != "" {
				mu.Lock()
				results[id] = out.Digest
				mu.Unlock()
			}
		}
	}

	pool := parallel.NewWorkerPool(s.opts.workers)
	ran := pool.ExecuteAll(ctx, tasks)
	pool.Close()

	log := s.logger()
	for i, id := range ids {
		if !started[i] {
			outcomes[i] = Outcome{ID: id, Err: ctx.Err()}
		}
		if err := outcomes[i].Err; err != nil {
			log.Warn("challenge: failed", "id", id, "err", err)
		}
	}
	log.Debug("challenge: batch solved", "challenges", len(ids), "ran", ran, "results", len(results))

	return Response{Results: results}, Report{Outcomes: outcomes}
}

func (s *Solver) solveOne(id string, raw json.RawMessage) Outcome {
	cs, err := DecodeSettings(raw)
	if err != nil {
		return Outcome{ID: id, Err: err}
	}
	res, err := s.opts.renderer.Render(cs.RenderSettings())
	if err != nil {
		return Outcome{ID: id, Err: err}
	}

	out := Outcome{ID: id, Status: res.Status}
	switch res.Status {
	case render.Rendered:
		out.Digest = s.opts.digester.Digest(res.Data, cs.Seed)
	case render.Unavailable:
		if s.opts.legacy {
			out.Digest = s.opts.digester.Digest([]byte(LegacySentinel), cs.Seed)
		}
	}
	return out
}

func (s *Solver) logger() *slog.Logger {
	if s.opts.logger != nil {
		return s.opts.logger
	}
	return picasso.Logger()
}
