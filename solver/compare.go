// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/linstep/matrix"
)

// Comparison is one method's outcome inside a ComparisonReport.
// Exactly one of Result or Err is set.
type Comparison struct {
	Method     Method
	Result     *Result
	Validation *Validation
	Err        error
}

// ComparisonReport collects every method run on the same (A, b).
//
//   - Entries         — one per Method, in registry order.
//   - MaxDisagreement — max |x_i − y_i| over every pair of converged solutions
//     (0 when fewer than two methods succeeded).
type ComparisonReport struct {
	Entries         []Comparison
	MaxDisagreement float64
}

// Compare runs all four methods on the same input. Each run works on its own
// private copy, so one method cannot observe another's working state.
//
// Errors: only input validation errors; per-method failures are reported in
// the entries.
func Compare(a matrix.Matrix, b []float64, opts ...Option) (*ComparisonReport, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, err
	}

	rep := &ComparisonReport{Entries: make([]Comparison, 0, methodCount)}
	var solved [][]float64
	for _, m := range Methods() {
		c := Comparison{Method: m}
		c.Result, c.Err = Run(m, a, b, opts...)
		if c.Err == nil {
			// Shapes were validated above; ValidateSolution cannot fail here.
			c.Validation, _ = ValidateSolution(a, b, c.Result.Solution)
			if c.Result.Converged {
				solved = append(solved, c.Result.Solution)
			}
		}
		rep.Entries = append(rep.Entries, c)
	}

	for i := 0; i < len(solved); i++ {
		for j := i + 1; j < len(solved); j++ {
			if d := maxAbsDiff(solved[i], solved[j]); d > rep.MaxDisagreement {
				rep.MaxDisagreement = d
			}
		}
	}

	return rep, nil
}

func maxAbsDiff(x, y []float64) float64 {
	out := matrix.NormZero
	for i := range x {
		if d := math.Abs(x[i] - y[i]); d > out {
			out = d
		}
	}

	return out
}
