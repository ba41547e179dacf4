// Package average computes category averages under a drop-lowest policy.
package average

import "sort"

// DropLowest averages scores after discarding the dropN lowest entries.
// The drop count is clamped to [0, len(scores)]. The second return value is
// false when there is nothing left to average, either because scores is
// empty or because every score was dropped; that is a valid outcome, not an
// error. The input slice is never mutated, so callers keep their ordering
// and identical inputs in any permutation produce the same result.
func DropLowest(scores []float64, dropN int) (float64, bool) {
	if len(scores) == 0 {
		return 0, false
	}

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	if dropN < 0 {
		dropN = 0
	}
	if dropN > len(sorted) {
		dropN = len(sorted)
	}

	kept := sorted[dropN:]
	if len(kept) == 0 {
		return 0, false
	}

	var sum float64
	for _, s := range kept {
		sum += s
	}
	return sum / float64(len(kept)), true
}
