// Package aggregate combines per-category averages into the weighted
// "current grade" and locates the final exam category.
package aggregate

import (
	"strings"

	"github.com/okian/gradeplan/internal/domain/average"
	"github.com/okian/gradeplan/internal/domain/model"
)

const percentScale = 100.0

// Current walks the categories and returns the weighted contribution of all
// non-final categories on a 0-100 scale, the final category's weight as a
// decimal fraction, and whether any category matched finalName.
//
// Matching is trimmed, case-insensitive name equality; no fuzzy matching.
// A category matching the final name never contributes to the current grade
// even when it lists scores (those are ignored), and when several categories
// match, the last match's weight wins. Categories with nothing left to
// average after drops contribute zero. found == false means the caller must
// treat the evaluation as failed, not read finalWeight as zero.
func Current(categories []model.Category, finalName string) (current, finalWeight float64, found bool) {
	want := canonical(finalName)

	for _, c := range categories {
		if canonical(c.Name) == want {
			finalWeight = c.Weight
			found = true
			continue
		}

		avg, ok := average.DropLowest(c.Scores, c.DropN)
		if !ok {
			continue
		}
		// Weight-fraction times percentage average, kept on the 0-100 scale.
		current += (avg / percentScale) * c.Weight * percentScale
	}

	return current, finalWeight, found
}

// Averages computes the post-drop average of every category, in input order,
// for reporting alongside the aggregate.
func Averages(categories []model.Category) []model.CategoryAverage {
	out := make([]model.CategoryAverage, 0, len(categories))
	for _, c := range categories {
		avg, ok := average.DropLowest(c.Scores, c.DropN)
		out = append(out, model.CategoryAverage{Name: c.Name, Average: avg, Scored: ok})
	}
	return out
}

// canonical normalizes a category name for final-exam matching.
func canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
