// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load() layers file/env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// CourseFile is the path of the YAML course definition to evaluate.
	CourseFile string `koanf:"course_file"`

	// MetricsAddr serves Prometheus metrics when non-empty, e.g. ":9090".
	// Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`

	// ScenarioScores are the hypothetical final scores projected in the
	// what-if table.
	ScenarioScores []float64 `koanf:"scenario_scores"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		CourseFile:     "course.yaml",
		MetricsAddr:    "",
		ScenarioScores: []float64{50, 60, 70, 80, 90, 100},
	}
}
