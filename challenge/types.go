// Package challenge fetches canvas proof challenges, solves them and posts
// the digests back.
//
// A challenge server answers GET with a batch of render settings keyed by
// challenge id and accepts POST with a digest per id:
//
//	GET  -> {"challenges": {"<id>": {"seed": 1, "multiplier": 16807, ...}}}
//	POST <- {"results": {"<id>": "<digest>"}}
//
// SolveURL performs the whole exchange. Solver solves a batch without any
// network access.
package challenge

import (
	"encoding/json"
	"errors"

	"github.com/gogpu/picasso/render"
)

// Settings are the render parameters of one challenge as they appear on
// the wire. OffsetParameter is the generator modulus.
type Settings struct {
	Seed            int64   `json:"seed"`
	Multiplier      int64   `json:"multiplier"`
	Iterations      int     `json:"iterations"`
	CanvasWidth     int     `json:"canvasWidth"`
	CanvasHeight    int     `json:"canvasHeight"`
	MaxShadowBlur   float64 `json:"maxShadowBlur"`
	FontSizeFactor  float64 `json:"fontSizeFactor"`
	OffsetParameter int64   `json:"offsetParameter"`
}

// RenderSettings converts s to render settings.
func (s Settings) RenderSettings() render.Settings {
	return render.Settings{
		Seed:       s.Seed,
		Multiplier: s.Multiplier,
		Modulus:    s.OffsetParameter,
		Params: render.Params{
			Width:          s.CanvasWidth,
			Height:         s.CanvasHeight,
			Iterations:     s.Iterations,
			FontSizeFactor: s.FontSizeFactor,
			MaxShadowBlur:  s.MaxShadowBlur,
		},
	}
}

// Input is the body of a challenge GET. Each challenge stays raw until it
// is solved, so one malformed entry fails only its own id.
type Input struct {
	Challenges map[string]json.RawMessage `json:"challenges"`
}

// NewInput encodes challenges as an Input.
func NewInput(challenges map[string]Settings) (Input, error) {
	in := Input{Challenges: make(map[string]json.RawMessage, len(challenges))}
	for id, cs := range challenges {
		raw, err := json.Marshal(cs)
		if err != nil {
			return Input{}, err
		}
		in.Challenges[id] = raw
	}
	return in, nil
}

// DecodeSettings decodes one challenge entry. A malformed entry is
// reported as a *render.InvalidParametersError naming the offending field.
func DecodeSettings(raw json.RawMessage) (Settings, error) {
	var cs Settings
	err := json.Unmarshal(raw, &cs)
	if err == nil {
		return cs, nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return Settings{}, &render.InvalidParametersError{
			Field:  typeErr.Field,
			Reason: "cannot decode JSON " + typeErr.Value + " as " + typeErr.Type.String(),
		}
	}
	return Settings{}, &render.InvalidParametersError{Field: "challenge", Reason: err.Error()}
}

// Response is the body of a challenge POST.
type Response struct {
	Results map[string]string `json:"results"`
}

// Outcome is the result of one challenge in a batch.
type Outcome struct {
	ID     string
	Status render.Status

	// Digest is set when the challenge produced a result.
	Digest string

	// Err is the render error, or the context error for a challenge that
	// never started.
	Err error
}

// Report lists the outcome of every challenge in a batch, ordered by id.
type Report struct {
	Outcomes []Outcome
}

// Failed returns the outcomes that carry an error.
func (r Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

// Count returns the number of outcomes with the given status and no error.
func (r Report) Count(status render.Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err == nil && o.Status == status {
			n++
		}
	}
	return n
}
