// Package solve inverts the weighted-sum grade equation and projects
// what-if outcomes for the final exam.
package solve

import "math"

// Score scale bounds for outcome classification.
const (
	minScore = 0.0
	maxScore = 100.0
)

// Outcome classifies a required final score for the caller's messaging.
type Outcome string

// Outcome kinds. AlreadyMet and Unreachable are expected result categories,
// not errors; only OutcomeError marks a degenerate computation.
const (
	OutcomeAchievable  Outcome = "achievable"  // required score within [0,100]
	OutcomeAlreadyMet  Outcome = "already_met" // target holds even with 0 on the final
	OutcomeUnreachable Outcome = "unreachable" // target needs more than a perfect final
	OutcomeError       Outcome = "error"       // NaN or infinite result
)

// Projection is one row of the what-if scenario table.
type Projection struct {
	FinalScore float64 // hypothetical final exam score
	Overall    float64 // resulting overall grade
}

// DefaultScenarioScores is the fixed set of hypothetical final scores
// projected by Scenarios.
var DefaultScenarioScores = []float64{50, 60, 70, 80, 90, 100}

// RequiredScore solves current + finalWeight*x == target for x, the final
// exam score needed to land exactly on target. The second return value is
// false when finalWeight is not positive, which would divide by zero.
func RequiredScore(current, finalWeight, target float64) (float64, bool) {
	if finalWeight <= 0 {
		return 0, false
	}
	return (target - current) / finalWeight, true
}

// Classify maps a required score onto an outcome kind. NaN and infinities
// are computation errors, distinct from the out-of-range informational
// outcomes.
func Classify(required float64) Outcome {
	switch {
	case math.IsNaN(required) || math.IsInf(required, 0):
		return OutcomeError
	case required < minScore:
		return OutcomeAlreadyMet
	case required > maxScore:
		return OutcomeUnreachable
	default:
		return OutcomeAchievable
	}
}

// Bounds returns the best and worst possible overall grades: a perfect
// final versus a zero on the final.
func Bounds(current, finalWeight float64) (best, worst float64) {
	return current + finalWeight*maxScore, current
}

// Scenarios projects the overall grade for each score in scores, in order.
// A nil or empty scores falls back to DefaultScenarioScores. Purely
// illustrative; there are no error conditions.
func Scenarios(current, finalWeight float64, scores []float64) []Projection {
	if len(scores) == 0 {
		scores = DefaultScenarioScores
	}
	out := make([]Projection, 0, len(scores))
	for _, s := range scores {
		out = append(out, Projection{FinalScore: s, Overall: current + finalWeight*s})
	}
	return out
}
