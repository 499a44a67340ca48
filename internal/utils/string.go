package utils

import (
	"context"

	"github.com/agext/levenshtein"
)

// FindClosestString returns the candidate with the smallest Levenshtein distance to s, ok is false if no candidate
// is at a distance <= maxDifferences. The search stops early if ctx (that can be nil) is done.
func FindClosestString(ctx context.Context, candidates []string, s string, maxDifferences int) (closest string, distance int, ok bool) {
	distance = -1

	for _, candidate := range candidates {
		if ctx != nil && ctx.Err() != nil {
			break
		}

		d := levenshtein.Distance(candidate, s, nil)
		if d <= maxDifferences && (distance == -1 || d < distance) {
			closest = candidate
			distance = d
			ok = true
		}
	}

	return
}
