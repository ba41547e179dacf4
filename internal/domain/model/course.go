// Package model contains domain models passed between layers.
package model

// Category represents a named grading component of a course, e.g. "Homework".
// Weight is a decimal fraction after interpretation; raw user input may be
// larger and is rescaled by weight normalization.
type Category struct {
	Name   string    // display name, matched case-insensitively against the final
	Weight float64   // decimal fraction of the overall grade
	Scores []float64 // raw scores, conventionally 0-100
	DropN  int       // how many lowest scores to drop before averaging
}

// Course bundles everything a single evaluation needs. Values are built fresh
// from user input per evaluation and carry no persistent identity.
type Course struct {
	Name       string     // display-only, unused in computation
	Categories []Category // ordered as entered
	FinalName  string     // which category is the final exam
	Target     float64    // desired overall grade, 0-100
}

// CategoryAverage captures a category's post-drop average for reporting.
type CategoryAverage struct {
	Name    string
	Average float64
	Scored  bool // false when the category had no scores left to average
}
