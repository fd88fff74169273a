// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/linstep/matrix"
)

// ValidateSystem is the pre-solve guard: A non-nil and square with
// matrix.MinOrder ≤ n ≤ matrix.MaxOrder, len(b) == n, all entries finite.
//
// Errors: ErrDimensionMismatch, matrix.ErrNilMatrix, matrix.ErrBadShape, matrix.ErrNaNInf.
func ValidateSystem(a matrix.Matrix, b []float64) error {
	return matrix.ValidateSystem(a, b)
}

// ValidateSolution computes the residual A·x − b and its infinity norm.
// It never judges the solve; the numbers are for display.
//
// Errors: shape errors only (ErrDimensionMismatch, matrix.ErrNilMatrix,
// matrix.ErrEmptyVector for a 0×0 input).
func ValidateSolution(a matrix.Matrix, b, x []float64) (*Validation, error) {
	r, err := matrix.Residual(a, x, b)
	if err != nil {
		return nil, fmt.Errorf("ValidateSolution: %w", err)
	}
	norm, err := matrix.InfNorm(r)
	if err != nil {
		return nil, fmt.Errorf("ValidateSolution: %w", err)
	}

	return &Validation{Residual: r, ResidualInfNorm: norm}, nil
}
