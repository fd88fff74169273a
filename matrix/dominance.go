// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Row verdict labels used in DominanceReport.Rows.
const (
	dominanceRowOK  = "OK"
	dominanceRowBad = "NOT DOMINANT"
)

// DominanceReport is the advisory result of CheckDiagonalDominance.
//
//   - Dominant — every row has |a_ii| ≥ Σ_{j≠i} |a_ij|.
//   - Strict   — every row has |a_ii| > Σ_{j≠i} |a_ij| (Jacobi convergence guaranteed).
//   - Rows     — exactly one descriptive line per matrix row, in row order.
//   - Verdict  — overall one-line conclusion.
type DominanceReport struct {
	Dominant bool     `json:"dominant"`
	Strict   bool     `json:"strict"`
	Rows     []string `json:"rows"`
	Verdict  string   `json:"verdict"`
}

// CheckDiagonalDominance compares, for each row i, |a_ii| with the sum of the
// absolute off-diagonal entries. Purely advisory: it never blocks solving.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: single i→j scan; one line per row formatted with DefaultFormatter.
//   - Stage 3: overall verdict.
//
// Example row line:
//
//	Row 1: |4| (diagonal) vs 1 (off-diagonal sum) -> OK
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func CheckDiagonalDominance(m Matrix) (DominanceReport, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return DominanceReport{}, validatorErrorf("CheckDiagonalDominance", err)
	}
	n := m.Rows()
	rep := DominanceReport{Dominant: true, Strict: true, Rows: make([]string, 0, n)}

	var (
		i, j      int
		v, diag   float64
		offDiag   float64
		status    string
		err       error
		formatter = DefaultFormatter
	)
	for i = 0; i < n; i++ {
		diag, offDiag = 0, 0
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return DominanceReport{}, validatorErrorf("CheckDiagonalDominance", err)
			}
			if i == j {
				diag = math.Abs(v)
				continue
			}
			offDiag += math.Abs(v)
		}

		status = dominanceRowOK
		if diag < offDiag {
			status = dominanceRowBad
			rep.Dominant = false
		}
		if diag <= offDiag {
			rep.Strict = false
		}
		rep.Rows = append(rep.Rows, fmt.Sprintf("Row %d: |%s| (diagonal) vs %s (off-diagonal sum) -> %s",
			i+1, formatter.Number(diag), formatter.Number(offDiag), status))
	}

	switch {
	case rep.Strict:
		rep.Verdict = "Matrix is strictly diagonally dominant: Jacobi iteration is guaranteed to converge"
	case rep.Dominant:
		rep.Verdict = "Matrix is diagonally dominant (not strictly): Jacobi convergence is not guaranteed"
	default:
		rep.Verdict = "Matrix is NOT diagonally dominant: pivoting may be required and Jacobi may diverge"
	}

	return rep, nil
}
