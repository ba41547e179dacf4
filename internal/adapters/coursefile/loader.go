// Package coursefile reads a course definition from a YAML file and turns
// it into the domain model. This is the input-validation boundary: range
// checks on scores, weights, and the target live here, not in the
// computation core.
package coursefile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/gradeplan/internal/domain/model"
	"github.com/okian/gradeplan/internal/domain/weights"
)

// fileCourse mirrors the YAML layout of a course definition.
type fileCourse struct {
	Course     string         `koanf:"course"`
	Target     float64        `koanf:"target" validate:"min=0,max=100"`
	Final      string         `koanf:"final" validate:"required"`
	Categories []fileCategory `koanf:"categories" validate:"required,min=1,dive"`
}

// fileCategory is one entry of the categories list. Weight is raw user
// input; Unit says how to read it (defaults to Decimal when omitted).
type fileCategory struct {
	Name   string    `koanf:"name" validate:"required"`
	Weight float64   `koanf:"weight" validate:"min=0"`
	Unit   string    `koanf:"unit" validate:"omitempty,oneof=Percent Decimal"`
	DropN  int       `koanf:"drop_n" validate:"min=0"`
	Scores []float64 `koanf:"scores" validate:"dive,min=0,max=100"`
}

// Load parses and validates the course definition at path.
// Validation failures are reported together, wrapped in ErrInvalidCourse,
// so the user can fix the whole file in one pass.
func Load(_ context.Context, path string) (model.Course, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return model.Course{}, fmt.Errorf("%w: %s: %w", ErrReadCourse, path, err)
	}

	var fc fileCourse
	if err := k.UnmarshalWithConf("", &fc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return model.Course{}, fmt.Errorf("%w: %s: %w", ErrReadCourse, path, err)
	}

	if err := validate(fc); err != nil {
		return model.Course{}, err
	}

	return toModel(fc), nil
}

// validate runs struct validation and flattens field errors into one
// readable message.
func validate(fc fileCourse) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(fc)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %w", ErrInvalidCourse, err)
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidCourse, strings.Join(msgs, "; "))
}

// toModel interprets the raw weights and builds the domain course.
func toModel(fc fileCourse) model.Course {
	categories := make([]model.Category, 0, len(fc.Categories))
	for _, c := range fc.Categories {
		unit := weights.Unit(c.Unit)
		if c.Unit == "" {
			unit = weights.UnitDecimal
		}
		categories = append(categories, model.Category{
			Name:   c.Name,
			Weight: weights.Interpret(c.Weight, unit),
			Scores: c.Scores,
			DropN:  c.DropN,
		})
	}

	return model.Course{
		Name:       fc.Course,
		Categories: categories,
		FinalName:  fc.Final,
		Target:     fc.Target,
	}
}
