// Package render writes an evaluation report as plain text. It renders
// only; it never computes or performs other I/O.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	service "github.com/okian/gradeplan/internal/app"
	"github.com/okian/gradeplan/internal/domain/solve"
)

// tabwriter layout constants.
const (
	tabMinWidth = 0
	tabWidth    = 4
	tabPadding  = 2
)

// Text writes the report to w in a terminal-friendly layout.
func Text(w io.Writer, r *service.Report) error {
	if _, err := fmt.Fprintf(w, "Course: %s\n", r.CourseName); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if r.WeightsNormalized {
		fmt.Fprintf(w, "Note: weights summed to %.3f and were rescaled to 100%%.\n", r.TotalWeight)
	}

	if len(r.Averages) > 0 {
		fmt.Fprintln(w, "\nCategory averages (after drops):")
		tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', 0)
		for _, a := range r.Averages {
			if a.Scored {
				fmt.Fprintf(tw, "  %s\t%.2f%%\n", a.Name, a.Average)
			} else {
				fmt.Fprintf(tw, "  %s\t(no scores)\n", a.Name)
			}
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	fmt.Fprintf(w, "\nCurrent grade (excluding final): %.2f\n", r.Current)
	fmt.Fprintf(w, "Final exam weight: %.2f%%\n", r.FinalWeight*100)
	fmt.Fprintf(w, "Best possible overall (100 on final): %.2f\n", r.Best)
	fmt.Fprintf(w, "Worst possible overall (0 on final): %.2f\n", r.Worst)
	fmt.Fprintln(w)

	switch r.Outcome {
	case solve.OutcomeAlreadyMet:
		fmt.Fprintf(w, "You already meet %.2f overall. Even a 0 on the final stays at or above target.\n", r.Target)
	case solve.OutcomeUnreachable:
		fmt.Fprintf(w, "Reaching %.2f is not possible. You would need %.2f on the final (> 100).\n", r.Target, r.Required)
	default:
		fmt.Fprintf(w, "To achieve %.2f overall, you need %.2f on the final exam.\n", r.Target, r.Required)
	}

	if len(r.Scenarios) > 0 {
		fmt.Fprintln(w, "\nWhat-if scenarios:")
		tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', 0)
		fmt.Fprintln(tw, "  Final Score (%)\tOverall Grade (%)")
		for _, s := range r.Scenarios {
			fmt.Fprintf(tw, "  %.0f%%\t%.2f\n", s.FinalScore, s.Overall)
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	return nil
}
