// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linstep/matrix"
)

// GaussJordan reduces [A | b] to [I | x] and returns x directly.
//
// Implementation, for each pivot k = 0..n-1:
//   - partial pivot: swap in the row with the largest |a_ik|, i ≥ k; fail with
//     ErrSingular when even that candidate is below the pivot tolerance;
//   - normalize row k by a_kk so the pivot becomes 1;
//   - eliminate column k from every other row (above and below) whose
//     coefficient is not negligible; snapshot [A | b].
//
// Errors: as Gauss.
// Complexity: Time O(n³), Space O(n²).
func GaussJordan(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	sys, err := newSystem(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGaussJordan, err)
	}
	var (
		rec = newRecorder(o)
		n   = sys.n
		tol = o.pivotTol
	)

	for k := 0; k < n; k++ {
		best := sys.pivotRow(k)
		if abest := math.Abs(sys.row(best)[k]); abest < tol {
			rec.addf(fmt.Sprintf("Column %d", k+1),
				"Every candidate pivot in column %d is below %g: the column has no usable pivot.", k+1, tol)
			return nil, rec.fail(MethodGaussJordan, fmt.Errorf("column %d has no usable pivot: %w", k+1, ErrSingular))
		}
		if best != k {
			rec.addf(fmt.Sprintf("Swap R%d <-> R%d", k+1, best+1),
				"|a%d%d| = %s is the largest candidate in column %d.",
				best+1, k+1, rec.num(math.Abs(sys.row(best)[k])), k+1)
			sys.swap(k, best)
		}

		rk := sys.row(k)
		pivot := rk[k]
		for j := k; j < n; j++ {
			rk[j] /= pivot
		}
		sys.b[k] /= pivot
		rec.addf(fmt.Sprintf("Normalize row %d", k+1), "B%d = B%d / (%s)", k+1, k+1, rec.num(pivot))

		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			ri := sys.row(i)
			factor := ri[k]
			if math.Abs(factor) < tol {
				continue
			}
			for j := k; j < n; j++ {
				ri[j] -= factor * rk[j]
			}
			sys.b[i] -= factor * sys.b[k]
			rec.addf("Row operation", "B%d = B%d - (%s)*B%d", i+1, i+1, rec.num(factor), k+1)
		}
		rec.add(fmt.Sprintf("After column %d", k+1), sys.snapshot(rec.f))
	}

	x := make([]float64, n)
	copy(x, sys.b)
	rec.addf("Reduced row echelon form", "A is now the identity matrix, so b holds the solution: x = %s", rec.f.Vector(x))

	return &Result{Method: MethodGaussJordan, Solution: x, Steps: rec.steps, Converged: true}, nil
}
