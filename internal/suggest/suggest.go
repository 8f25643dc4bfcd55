// Package suggest finds the closest known name for a misspelled one.
package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxDistance is the largest edit distance still reported as a suggestion.
const MaxDistance = 3

// Closest returns the candidate nearest to input by Levenshtein distance,
// compared case-insensitively. Returns "" when no candidate is within
// MaxDistance. Ties go to the earlier candidate.
func Closest(input string, candidates []string) string {
	input = strings.ToLower(input)
	best, bestDist := "", MaxDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(input, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
