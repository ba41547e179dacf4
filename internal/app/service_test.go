package service_test

import (
	"context"
	"errors"
	"testing"

	service "github.com/okian/gradeplan/internal/app"
	"github.com/okian/gradeplan/internal/domain/model"
	"github.com/okian/gradeplan/internal/domain/solve"
	"github.com/okian/gradeplan/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithScenarioScores([]float64{25, 75}),
			service.WithLogger(logger.Get()),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})
}

func TestService_Evaluate(t *testing.T) {
	Convey("Given an evaluation service", t, func() {
		svc := service.New()
		ctx := context.Background()

		Convey("When evaluating a typical course", func() {
			course := model.Course{
				Name: "Algorithms",
				Categories: []model.Category{
					{Name: "Homework", Weight: 0.3, Scores: []float64{80, 90, 100}, DropN: 1},
					{Name: "Final Exam", Weight: 0.7},
				},
				FinalName: "Final Exam",
				Target:    90,
			}

			report, err := svc.Evaluate(ctx, course)

			Convey("Then it should produce a full report", func() {
				So(err, ShouldBeNil)
				So(report, ShouldNotBeNil)
				So(report.ID, ShouldNotBeEmpty)
				So(report.CourseName, ShouldEqual, "Algorithms")
				So(report.Current, ShouldAlmostEqual, 28.5, 1e-9)
				So(report.FinalWeight, ShouldAlmostEqual, 0.7, 1e-9)
				So(report.Required, ShouldAlmostEqual, (90-28.5)/0.7, 1e-9)
				So(report.Outcome, ShouldEqual, solve.OutcomeAchievable)
			})

			Convey("And plugging the required score back hits the target", func() {
				So(report.Current+report.FinalWeight*report.Required, ShouldAlmostEqual, 90.0, 1e-9)
			})

			Convey("And the bounds follow from a perfect and a zero final", func() {
				So(report.Best, ShouldAlmostEqual, 98.5, 1e-9)
				So(report.Worst, ShouldAlmostEqual, 28.5, 1e-9)
			})

			Convey("And weights already summing to one stay untouched", func() {
				So(report.WeightsNormalized, ShouldBeFalse)
				So(report.TotalWeight, ShouldAlmostEqual, 1.0, 1e-9)
			})

			Convey("And the scenario table covers the default score set", func() {
				So(report.Scenarios, ShouldHaveLength, 6)
				So(report.Scenarios[0].FinalScore, ShouldEqual, 50.0)
				So(report.Scenarios[5].Overall, ShouldAlmostEqual, 98.5, 1e-9)
			})
		})

		Convey("When weights were entered as raw percentages", func() {
			course := model.Course{
				Name: "Physics",
				Categories: []model.Category{
					{Name: "Labs", Weight: 30, Scores: []float64{90}},
					{Name: "Final", Weight: 70},
				},
				FinalName: "Final",
				Target:    80,
			}

			report, err := svc.Evaluate(ctx, course)

			Convey("Then weights are rescaled and flagged", func() {
				So(err, ShouldBeNil)
				So(report.WeightsNormalized, ShouldBeTrue)
				So(report.TotalWeight, ShouldAlmostEqual, 100.0, 1e-9)
				So(report.FinalWeight, ShouldAlmostEqual, 0.7, 1e-9)
				So(report.Current, ShouldAlmostEqual, 27.0, 1e-9)
			})

			Convey("And the caller's course is not mutated", func() {
				So(course.Categories[0].Weight, ShouldEqual, 30.0)
				So(course.Categories[1].Weight, ShouldEqual, 70.0)
			})
		})

		Convey("When the target is already guaranteed", func() {
			course := model.Course{
				Name: "History",
				Categories: []model.Category{
					{Name: "Essays", Weight: 0.8, Scores: []float64{100, 95}},
					{Name: "Final", Weight: 0.2},
				},
				FinalName: "Final",
				Target:    60,
			}

			report, err := svc.Evaluate(ctx, course)

			Convey("Then the outcome reports already met, not an error", func() {
				So(err, ShouldBeNil)
				So(report.Required, ShouldBeLessThan, 0)
				So(report.Outcome, ShouldEqual, solve.OutcomeAlreadyMet)
			})
		})

		Convey("When the target is unreachable", func() {
			course := model.Course{
				Name: "Chemistry",
				Categories: []model.Category{
					{Name: "Quizzes", Weight: 0.9, Scores: []float64{10, 12}},
					{Name: "Final", Weight: 0.1},
				},
				FinalName: "Final",
				Target:    90,
			}

			report, err := svc.Evaluate(ctx, course)

			Convey("Then the outcome reports unreachable, not an error", func() {
				So(err, ShouldBeNil)
				So(report.Required, ShouldBeGreaterThan, 100)
				So(report.Outcome, ShouldEqual, solve.OutcomeUnreachable)
			})
		})

		Convey("When every weight is zero", func() {
			course := model.Course{
				Name: "Empty",
				Categories: []model.Category{
					{Name: "Homework", Weight: 0},
					{Name: "Final", Weight: 0},
				},
				FinalName: "Final",
				Target:    90,
			}

			_, err := svc.Evaluate(ctx, course)

			Convey("Then evaluation is blocked with the zero-weight error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, service.ErrZeroTotalWeight), ShouldBeTrue)
			})
		})

		Convey("When no category matches the final name", func() {
			course := model.Course{
				Name: "Biology",
				Categories: []model.Category{
					{Name: "Homework", Weight: 0.5, Scores: []float64{80}},
					{Name: "Quizzes", Weight: 0.5, Scores: []float64{70}},
				},
				FinalName: "Final Exam",
				Target:    85,
			}

			_, err := svc.Evaluate(ctx, course)

			Convey("Then evaluation is blocked with the not-found error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, service.ErrFinalNotFound), ShouldBeTrue)
			})
		})

		Convey("When the final category carries zero weight", func() {
			course := model.Course{
				Name: "Art",
				Categories: []model.Category{
					{Name: "Projects", Weight: 1.0, Scores: []float64{88}},
					{Name: "Final", Weight: 0},
				},
				FinalName: "Final",
				Target:    90,
			}

			_, err := svc.Evaluate(ctx, course)

			Convey("Then the solve is degenerate", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, service.ErrDegenerateSolve), ShouldBeTrue)
			})
		})

		Convey("When evaluating the same course twice", func() {
			course := model.Course{
				Name: "Statistics",
				Categories: []model.Category{
					{Name: "Homework", Weight: 0.4, Scores: []float64{75, 85, 95}, DropN: 1},
					{Name: "Final", Weight: 0.6},
				},
				FinalName: "Final",
				Target:    88,
			}

			first, err1 := svc.Evaluate(ctx, course)
			second, err2 := svc.Evaluate(ctx, course)

			Convey("Then the results are identical apart from the report id", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first.Current, ShouldEqual, second.Current)
				So(first.Required, ShouldEqual, second.Required)
				So(first.Outcome, ShouldEqual, second.Outcome)
				So(first.ID, ShouldNotEqual, second.ID)
			})
		})

		Convey("When the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := svc.Evaluate(cancelled, model.Course{})

			Convey("Then it should return the context error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service with custom scenario scores", t, func() {
		svc := service.New(service.WithScenarioScores([]float64{0, 100}))

		course := model.Course{
			Name: "Music",
			Categories: []model.Category{
				{Name: "Practice", Weight: 0.5, Scores: []float64{100}},
				{Name: "Final", Weight: 0.5},
			},
			FinalName: "Final",
			Target:    75,
		}

		Convey("When evaluating", func() {
			report, err := svc.Evaluate(context.Background(), course)

			Convey("Then the what-if table uses the custom scores", func() {
				So(err, ShouldBeNil)
				So(report.Scenarios, ShouldHaveLength, 2)
				So(report.Scenarios[0].Overall, ShouldAlmostEqual, 50.0, 1e-9)
				So(report.Scenarios[1].Overall, ShouldAlmostEqual, 100.0, 1e-9)
			})
		})
	})
}
