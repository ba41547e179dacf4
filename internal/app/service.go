// Package service provides the evaluation service that turns a course
// definition into a grade report.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/gradeplan/internal/domain/aggregate"
	"github.com/okian/gradeplan/internal/domain/model"
	"github.com/okian/gradeplan/internal/domain/solve"
	"github.com/okian/gradeplan/internal/domain/weights"
	"github.com/okian/gradeplan/pkg/logger"
	"github.com/okian/gradeplan/pkg/metrics"
)

// Report bundles everything an evaluation produced for rendering.
type Report struct {
	ID         string  // correlation id for logs, not part of the result semantics
	CourseName string  // display-only
	Target     float64 // desired overall grade

	TotalWeight       float64 // weight total before any rescaling
	WeightsNormalized bool    // true when weights were rescaled to sum to one

	Current     float64 // weighted non-final contribution, 0-100 scale
	FinalWeight float64 // final exam weight as a decimal fraction

	Required float64       // final score needed to land exactly on target
	Outcome  solve.Outcome // interpretation of Required

	Best  float64 // overall grade with a perfect final
	Worst float64 // overall grade with a zero on the final

	Averages  []model.CategoryAverage // post-drop averages, input order
	Scenarios []solve.Projection      // what-if table
}

// Service evaluates courses. It holds no state between evaluations:
// identical inputs always produce identical results, and concurrent
// Evaluate calls are safe.
type Service struct {
	scenarioScores []float64
	logger         logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithScenarioScores overrides the hypothetical final scores projected in
// the what-if table.
func WithScenarioScores(scores []float64) Option {
	return func(s *Service) {
		if len(scores) > 0 {
			s.scenarioScores = scores
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		scenarioScores: solve.DefaultScenarioScores,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	return s
}

// Evaluate runs the full pipeline: weight normalization, aggregation,
// the required-score solve, and the scenario projection.
//
// The three error kinds are ErrZeroTotalWeight, ErrFinalNotFound, and
// ErrDegenerateSolve; required scores outside [0,100] are reported as
// outcomes, not errors. The input course is never mutated.
func (s *Service) Evaluate(ctx context.Context, course model.Course) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluation cancelled: %w", err)
	}

	start := time.Now()
	reportID := uuid.NewString()

	s.logger.Debug(ctx, "evaluating course",
		logger.String("reportID", reportID),
		logger.String("course", course.Name),
		logger.Int("categories", len(course.Categories)),
		logger.String("final", course.FinalName),
		logger.Float64("target", course.Target),
	)

	// Normalize weights on a copy so the caller's course stays intact.
	categories := cloneCategories(course.Categories)
	ws := make([]float64, len(categories))
	for i, c := range categories {
		ws[i] = c.Weight
	}
	total, normalized := weights.Normalize(ws)
	if total <= 0 {
		metrics.RecordError("zero_total_weight")
		return nil, fmt.Errorf("course %q: %w", course.Name, ErrZeroTotalWeight)
	}
	for i := range categories {
		categories[i].Weight = ws[i]
	}
	if normalized {
		metrics.RecordWeightsNormalized()
		s.logger.Info(ctx, "weights rescaled to sum to one",
			logger.String("reportID", reportID),
			logger.Float64("total", total),
		)
	}

	current, finalWeight, found := aggregate.Current(categories, course.FinalName)
	if !found {
		metrics.RecordError("final_not_found")
		return nil, fmt.Errorf("category %q: %w", course.FinalName, ErrFinalNotFound)
	}

	required, ok := solve.RequiredScore(current, finalWeight, course.Target)
	if !ok {
		metrics.RecordError("degenerate_solve")
		return nil, fmt.Errorf("final weight %.4f: %w", finalWeight, ErrDegenerateSolve)
	}
	outcome := solve.Classify(required)
	if outcome == solve.OutcomeError {
		metrics.RecordError("degenerate_solve")
		return nil, fmt.Errorf("non-finite result: %w", ErrDegenerateSolve)
	}

	best, worst := solve.Bounds(current, finalWeight)

	report := &Report{
		ID:                reportID,
		CourseName:        course.Name,
		Target:            course.Target,
		TotalWeight:       total,
		WeightsNormalized: normalized,
		Current:           current,
		FinalWeight:       finalWeight,
		Required:          required,
		Outcome:           outcome,
		Best:              best,
		Worst:             worst,
		Averages:          aggregate.Averages(categories),
		Scenarios:         solve.Scenarios(current, finalWeight, s.scenarioScores),
	}

	metrics.RecordEvaluation(time.Since(start), len(categories))
	metrics.RecordOutcome(string(outcome))

	s.logger.Info(ctx, "course evaluated",
		logger.String("reportID", reportID),
		logger.Float64("current", current),
		logger.Float64("finalWeight", finalWeight),
		logger.Float64("required", required),
		logger.String("outcome", string(outcome)),
	)

	return report, nil
}

// cloneCategories deep-copies the categories so normalization never leaks
// back into caller-owned input.
func cloneCategories(in []model.Category) []model.Category {
	out := make([]model.Category, len(in))
	copy(out, in)
	for i := range out {
		if in[i].Scores != nil {
			out[i].Scores = make([]float64, len(in[i].Scores))
			copy(out[i].Scores, in[i].Scores)
		}
	}
	return out
}
