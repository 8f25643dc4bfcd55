// Package digest reduces encoded surface bytes to the short proof string
// returned to the challenge server.
//
// Two digesters are provided. Cyrb53 is the default and matches the
// 53-bit string hash computed by browser clients. Blake2b is a keyed
// BLAKE2b-256 for deployments where both ends run this module.
// Neither is meant to be a security boundary.
package digest

import (
	"github.com/gogpu/picasso/internal/suggest"
)

// Digester hashes rendered output under a seed.
type Digester interface {
	// Name returns the registered digester name.
	Name() string

	// Digest returns the proof string for data under seed.
	Digest(data []byte, seed int64) string
}

// Default returns the default digester, Cyrb53.
func Default() Digester { return Cyrb53{} }

var digesters = []Digester{Cyrb53{}, Blake2b{}}

// Names returns the names of the built-in digesters.
func Names() []string {
	names := make([]string, len(digesters))
	for i, d := range digesters {
		names[i] = d.Name()
	}
	return names
}

// Lookup returns the built-in digester called name.
func Lookup(name string) (Digester, error) {
	for _, d := range digesters {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, &UnknownError{Name: name, Suggestion: suggest.Closest(name, Names())}
}

// UnknownError is returned by Lookup for an unregistered name.
type UnknownError struct {
	Name string

	// Suggestion is the closest known name, if any.
	Suggestion string
}

func (e *UnknownError) Error() string {
	msg := "digest: unknown digester " + e.Name
	if e.Suggestion != "" {
		msg += " (did you mean " + e.Suggestion + "?)"
	}
	return msg
}
