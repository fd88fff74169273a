// SPDX-License-Identifier: MIT
// Package matrix provides the vector/matrix kernels the step-by-step solvers
// build on: matrix-vector product, residual, infinity norm and determinant.
//
// Purpose:
//   - Keep the arithmetic primitives in one place with uniform validation and
//     error wrapping, so the solver package only expresses algorithm steps.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.
//   - Inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm reductions.
const NormZero = 0.0

// ZeroSum is the initial value for dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec      = "MatVec"
	opResidual    = "Residual"
	opInfNorm     = "InfNorm"
	opDeterminant = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Residual computes r = A·x − b, row by row.
//
// Implementation:
//   - Stage 1: MatVec(A, x) validates A and len(x) == A.Cols().
//   - Stage 2: validate len(b) == A.Rows(); subtract b in place on the fresh y.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opResidual).
// Complexity: Time O(r*c), Space O(r).
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	y, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	for i := range y {
		y[i] -= b[i]
	}

	return y, nil
}

// InfNorm returns max_i |v_i|.
//
// Errors: ErrEmptyVector when len(v) == 0 (nil included).
// Complexity: O(len(v)).
func InfNorm(v []float64) (float64, error) {
	if len(v) == 0 {
		return 0, matrixErrorf(opInfNorm, ErrEmptyVector)
	}
	norm := NormZero
	for _, x := range v {
		if a := math.Abs(x); a > norm {
			norm = a
		}
	}

	return norm, nil
}

// Determinant computes det(m) by cofactor (Laplace) expansion along the first
// row of each minor.
//
// Implementation:
//   - Stage 1: validate m (not nil, square) and take a flat Dense snapshot.
//   - Stage 2: recurse over (row set, column set) index lists; 1×1 and 2×2
//     minors are closed-form, zero cofactor entries are skipped.
//
// Notes:
//   - O(n!) in the worst case; intended for the small systems this module
//     targets (n ≤ MaxOrder ⇒ at most 720 leaf products).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opDeterminant).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := DenseOf(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := d.r
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return laplace(d.data, n, idx, idx), nil
}

// laplace expands the minor selected by rows×cols of the n-stride buffer a.
// len(rows) == len(cols) > 0 is guaranteed by the caller.
func laplace(a []float64, stride int, rows, cols []int) float64 {
	k := len(rows)
	switch k {
	case 1:
		return a[rows[0]*stride+cols[0]]
	case 2:
		return a[rows[0]*stride+cols[0]]*a[rows[1]*stride+cols[1]] -
			a[rows[0]*stride+cols[1]]*a[rows[1]*stride+cols[0]]
	}

	var (
		j     int
		v     float64
		det   = ZeroSum
		sign  = 1.0
		base  = rows[0] * stride
		minor = make([]int, 0, k-1)
	)
	for j = 0; j < k; j++ {
		v = a[base+cols[j]]
		if v != 0 {
			minor = minor[:0]
			minor = append(minor, cols[:j]...)
			minor = append(minor, cols[j+1:]...)
			det += sign * v * laplace(a, stride, rows[1:], minor)
		}
		sign = -sign
	}

	return det
}
