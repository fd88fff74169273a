// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linstep/matrix"
)

// Cramer solves A·x = b with Cramer's rule: x_i = det(A_i) / det(A), where
// A_i is A with column i replaced by b. Determinants use cofactor expansion
// (matrix.Determinant).
//
// Errors: as Gauss; ErrSingular when |det(A)| is below the pivot tolerance.
// Complexity: O(n · n!) for n ≤ matrix.MaxOrder.
func Cramer(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	sys, err := newSystem(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodCramer, err)
	}
	var (
		rec = newRecorder(o)
		n   = sys.n
	)

	d, err := matrix.Determinant(sys.a)
	if err != nil {
		return nil, rec.fail(MethodCramer, err)
	}
	rec.addf("Determinant of A", "A =\n%s\ndet(A) = %s", rec.f.Matrix(sys.a), rec.num(d))
	if math.Abs(d) < o.pivotTol {
		rec.add("No unique solution", "det(A) = 0, so Cramer's rule cannot be applied.")
		return nil, rec.fail(MethodCramer, fmt.Errorf("det(A) = %s: %w", rec.num(d), ErrSingular))
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		ai := sys.a.CloneDense()
		for r := 0; r < n; r++ {
			row, _ := ai.RowView(r)
			row[i] = sys.b[r]
		}
		di, err := matrix.Determinant(ai)
		if err != nil {
			return nil, rec.fail(MethodCramer, err)
		}
		x[i] = di / d
		rec.addf(fmt.Sprintf("Variable x%d", i+1),
			"A%d (column %d replaced by b) =\n%s\ndet(A%d) = %s\nx%d = det(A%d) / det(A) = %s / %s = %s",
			i+1, i+1, rec.f.Matrix(ai), i+1, rec.num(di), i+1, i+1, rec.num(di), rec.num(d), rec.num(x[i]))
	}

	return &Result{Method: MethodCramer, Solution: x, Steps: rec.steps, Converged: true}, nil
}
