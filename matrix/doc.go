// Package matrix provides the small dense-matrix toolkit behind linstep's
// step-by-step solvers.
//
// The matrix package provides:
//
//   - Dense: a row-major Matrix with bounds-checked At/Set, deep Clone, and
//     the row primitives elimination needs (RowView, SwapRows).
//   - Validators: ValidateSystem and friends, the single source of truth for
//     "is this a well-formed n×n system with a length-n right-hand side".
//   - Kernels: MatVec, Residual, InfNorm, Determinant.
//   - Formatting: FormatNumber / Formatter for deterministic, compact numbers
//     and augmented-matrix snapshots used verbatim in step logs.
//   - CheckDiagonalDominance: the advisory per-row dominance analysis.
//
// Systems are small (2 ≤ n ≤ 6), so clarity and determinism are preferred
// over blocked kernels.
//
// See the examples in this package and solver for usage patterns.
package matrix
