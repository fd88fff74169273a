// SPDX-License-Identifier: MIT

package solver

import (
	"errors"

	"github.com/katalvlaran/linstep/matrix"
)

var (
	// ErrSingular: a pivot, a whole candidate column or the determinant fell
	// below the pivot tolerance; this method cannot produce a unique solution.
	ErrSingular = errors.New("solver: singular matrix (no unique solution)")

	// ErrUnknownMethod: the requested method is not in the registry.
	ErrUnknownMethod = errors.New("solver: unknown method")

	// ErrZeroDiagonal: Jacobi needs every |a_ii| at or above the pivot tolerance.
	ErrZeroDiagonal = errors.New("solver: zero on the diagonal (Jacobi update undefined)")

	// ErrDimensionMismatch aliases matrix.ErrDimensionMismatch so callers can
	// match shape errors without importing matrix.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// SolveError reports a solver failure together with the step log recorded
// up to the failure point. Unwrap exposes the sentinel (ErrSingular, …).
type SolveError struct {
	Method Method
	Steps  []Step
	Err    error
}

func (e *SolveError) Error() string {
	return e.Method.String() + ": " + e.Err.Error()
}

func (e *SolveError) Unwrap() error {
	return e.Err
}

// PartialSteps returns the steps recorded before a solver failed, or nil when
// err carries none.
func PartialSteps(err error) []Step {
	var se *SolveError
	if errors.As(err, &se) {
		return se.Steps
	}

	return nil
}
