// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
//
// Notes:
//   - Every threshold used by the formatting and validation helpers is a
//     named constant here; callers that need a different policy inject it
//     (Formatter.Snap, ValidateSystem bounds) instead of editing literals.
package matrix

// Numeric policy.
const (
	// DefaultIntegerSnap is the distance to the nearest integer under which a
	// value is rendered as that integer by FormatNumber.
	DefaultIntegerSnap = 1e-9

	// DefaultDecimals is the number of fractional digits rendered for
	// non-integral values before trailing zeros are stripped.
	DefaultDecimals = 4

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)

// Supported system orders for the step-by-step solvers.
const (
	// MinOrder is the smallest accepted n for an n×n system.
	MinOrder = 2

	// MaxOrder is the largest accepted n for an n×n system.
	MaxOrder = 6
)

// panic messages (programmer errors only)
const (
	panicSnapInvalid = "matrix: Formatter: snap must be finite, non-negative"
)
