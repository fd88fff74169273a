// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with a context
// tag) and tests check them via errors.Is. No exported function panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Facades wrap
// with fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> dimension mismatch -> numeric policy (NaN/Inf) -> empty input.

var (
	// ErrBadShape is returned when a shape is outside the supported range,
	// e.g. a linear system smaller than 2×2 or larger than MaxOrder×MaxOrder.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a non-square coefficient matrix or a right-hand side of wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that row literals are ragged.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrEmptyVector is returned by vector reductions (InfNorm) on a zero-length input.
	// An empty vector is never a legitimate residual, so we fail fast instead of
	// inventing a value.
	ErrEmptyVector = errors.New("matrix: empty vector")
)
