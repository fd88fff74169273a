// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linstep/matrix"
)

// Jacobi iterates x_new[i] = (b_i - Σ_{j≠i} a_ij·x[j]) / a_ii from x = 0,
// updating all components from the previous iterate.
//
// Implementation:
//   - Stage 1: validate and copy; every |a_ii| must be at or above the pivot
//     tolerance, else ErrZeroDiagonal before any iteration.
//   - Stage 2: iterate up to the cap; log each iterate and err = ‖x_new − x‖∞;
//     stop as soon as err < tolerance.
//   - Stage 3: exhausting the cap is NOT an error: the last iterate is returned
//     with Converged=false.
//   - Divergence: an iterate whose entries, step norm or residual overflow to
//     ±Inf/NaN is discarded; the run stops with a "Diverged" step and returns
//     the last finite iterate (Converged=false, Iterations = finite iterates).
//     The returned solution therefore always has a finite residual.
//
// Notes:
//   - Convergence is guaranteed for strictly diagonally dominant A (see
//     matrix.CheckDiagonalDominance), not required.
//
// Complexity: Time O(iter · n²), Space O(n).
func Jacobi(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	sys, err := newSystem(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodJacobi, err)
	}
	var (
		rec = newRecorder(o)
		n   = sys.n
	)

	for i := 0; i < n; i++ {
		if aii := sys.row(i)[i]; math.Abs(aii) < o.pivotTol {
			rec.addf("Diagonal check", "a%d%d = %s: the Jacobi update divides by the diagonal.", i+1, i+1, rec.num(aii))
			return nil, rec.fail(MethodJacobi, fmt.Errorf("a%d%d = %s: %w", i+1, i+1, rec.num(aii), ErrZeroDiagonal))
		}
	}

	x := make([]float64, n)
	rec.addf("Initial guess", "x = %s", rec.f.Vector(x))

	var (
		diff      = make([]float64, n)
		converged bool
		diverged  bool
		iter      int
		errNorm   float64
	)
	for iter = 1; iter <= o.maxIter; iter++ {
		next := make([]float64, n)
		for i := 0; i < n; i++ {
			ri := sys.row(i)
			s := sys.b[i]
			for j := 0; j < n; j++ {
				if j != i {
					s -= ri[j] * x[j]
				}
			}
			next[i] = s / ri[i]
			diff[i] = next[i] - x[i]
		}
		// n ≥ matrix.MinOrder, so the norm of diff is always defined.
		norm, _ := matrix.InfNorm(diff)
		if !sys.finiteIterate(next, norm) {
			diverged = true
			break
		}
		errNorm = norm
		rec.addf(fmt.Sprintf("Iteration %d", iter), "x = %s\nerror = %.2e", rec.f.Vector(next), errNorm)
		x = next
		if errNorm < o.tolerance {
			converged = true
			break
		}
	}

	switch {
	case converged:
		rec.addf("Converged", "Stopped after %d iteration(s): error %.2e < tolerance %g.", iter, errNorm, o.tolerance)
	case diverged:
		iter--
		rec.addf("Diverged",
			"Iteration %d overflowed to a non-finite value; returning the last finite iterate (iteration %d).",
			iter+1, iter)
	default:
		iter = o.maxIter
		rec.addf("Not converged",
			"Reached the limit of %d iterations with error %.2e >= tolerance %g; returning the last iterate.",
			o.maxIter, errNorm, o.tolerance)
	}

	return &Result{Method: MethodJacobi, Solution: x, Steps: rec.steps, Iterations: iter, Converged: converged}, nil
}

// finiteIterate reports whether x, its step norm and its residual A·x − b are
// all finite.
func (s *system) finiteIterate(x []float64, stepNorm float64) bool {
	if math.IsNaN(stepNorm) || math.IsInf(stepNorm, 0) {
		return false
	}
	if matrix.ValidateFiniteVec(x) != nil {
		return false
	}
	r, err := matrix.Residual(s.a, x, s.b)
	if err != nil {
		return false
	}

	return matrix.ValidateFiniteVec(r) == nil
}
