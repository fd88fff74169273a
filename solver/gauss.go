// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/linstep/matrix"
)

// Execution-mode labels for the summary entry that opens a Gauss log.
const (
	titleExecutionMode = "Execution mode"
	modeNaive          = "Naive Gaussian elimination: no row swaps were needed."
	modePivoting       = "Partial pivoting: %d row swap(s) performed"
)

// Gauss solves A·x = b by forward elimination with adaptive partial pivoting
// followed by back substitution.
//
// Implementation:
//   - Stage 1: validate and copy (A, b).
//   - Stage 2: for each pivot column k = 0..n-2:
//     pick best = argmax_{i≥k} |a_ik|; fail with ErrSingular when both a_kk
//     and the best candidate are negligible; swap when a_kk is negligible
//     (mandatory) or when best ≠ k (stability); eliminate rows i > k whose
//     coefficient is not negligible, logging "Bi = Bi - (f)*Bk"; snapshot [A | b].
//   - Stage 3: back substitution i = n-1..0 with the literal arithmetic logged;
//     a negligible a_ii fails with ErrSingular.
//   - Stage 4: prefix the log with an "Execution mode" summary: naive when no
//     swap happened, partial pivoting otherwise (every swap listed).
//
// Errors:
//   - ErrDimensionMismatch / matrix.ErrBadShape / matrix.ErrNaNInf on malformed input.
//   - *SolveError wrapping ErrSingular, carrying the partial log.
//
// Complexity: Time O(n³), Space O(n²).
func Gauss(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	sys, err := newSystem(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGauss, err)
	}
	var (
		rec   = newRecorder(o)
		n     = sys.n
		tol   = o.pivotTol
		swaps []string
	)

	// Forward elimination.
	for k := 0; k < n-1; k++ {
		best := sys.pivotRow(k)
		akk := math.Abs(sys.row(k)[k])
		abest := math.Abs(sys.row(best)[k])

		var reason string
		switch {
		case akk < tol && abest < tol:
			rec.addf(fmt.Sprintf("Column %d", k+1),
				"Every candidate pivot in column %d is below %g: the column has no usable pivot.", k+1, tol)
			return nil, rec.fail(MethodGauss, fmt.Errorf("column %d has no usable pivot: %w", k+1, ErrSingular))
		case akk < tol:
			reason = fmt.Sprintf("pivot a%d%d = %s is negligible, swap is mandatory",
				k+1, k+1, rec.num(sys.row(k)[k]))
		case best != k:
			reason = fmt.Sprintf("|a%d%d| = %s > |a%d%d| = %s, swap for stability",
				best+1, k+1, rec.num(abest), k+1, k+1, rec.num(akk))
		}

		if best != k {
			sys.swap(k, best)
			swaps = append(swaps, fmt.Sprintf("column %d: R%d <-> R%d (%s)", k+1, k+1, best+1, reason))
			rec.addf(fmt.Sprintf("Swap R%d <-> R%d", k+1, best+1), "%s.\n%s", upperFirst(reason), sys.snapshot(rec.f))
		}

		rk := sys.row(k)
		pivot := rk[k]
		for i := k + 1; i < n; i++ {
			ri := sys.row(i)
			if math.Abs(ri[k]) < tol {
				continue
			}
			factor := ri[k] / pivot
			for j := k; j < n; j++ {
				ri[j] -= factor * rk[j]
			}
			sys.b[i] -= factor * sys.b[k]
			rec.addf("Row operation", "B%d = B%d - (%s)*B%d", i+1, i+1, rec.num(factor), k+1)
		}
		rec.add(fmt.Sprintf("After eliminating column %d", k+1), sys.snapshot(rec.f))
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		ri := sys.row(i)
		if math.Abs(ri[i]) < tol {
			rec.addf(fmt.Sprintf("Back substitution x%d", i+1),
				"Pivot a%d%d = %s is below %g: x%d cannot be determined.", i+1, i+1, rec.num(ri[i]), tol, i+1)
			return nil, rec.fail(MethodGauss, fmt.Errorf("zero pivot a%d%d in back substitution: %w", i+1, i+1, ErrSingular))
		}

		sum := matrix.ZeroSum
		terms := make([]string, 0, n-i-1)
		for j := i + 1; j < n; j++ {
			sum += ri[j] * x[j]
			terms = append(terms, fmt.Sprintf("(%s)*(%s)", rec.num(ri[j]), rec.num(x[j])))
		}
		num := sys.b[i] - sum
		x[i] = num / ri[i]

		if len(terms) == 0 {
			rec.addf(fmt.Sprintf("Back substitution x%d", i+1), "x%d = %s / %s = %s",
				i+1, rec.num(sys.b[i]), rec.num(ri[i]), rec.num(x[i]))
			continue
		}
		rec.addf(fmt.Sprintf("Back substitution x%d", i+1), "x%d = (%s - [%s]) / %s = %s / %s = %s",
			i+1, rec.num(sys.b[i]), strings.Join(terms, " + "), rec.num(ri[i]),
			rec.num(num), rec.num(ri[i]), rec.num(x[i]))
	}

	steps := make([]Step, 0, len(rec.steps)+1)
	steps = append(steps, executionMode(swaps))
	steps = append(steps, rec.steps...)

	return &Result{Method: MethodGauss, Solution: x, Steps: steps, Converged: true}, nil
}

// executionMode builds the summary entry classifying the run.
func executionMode(swaps []string) Step {
	if len(swaps) == 0 {
		return Step{Title: titleExecutionMode, Content: modeNaive}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, modePivoting, len(swaps))
	for _, s := range swaps {
		sb.WriteString("\n• ")
		sb.WriteString(s)
	}

	return Step{Title: titleExecutionMode, Content: sb.String()}
}

// snapshot renders the working augmented matrix.
func (s *system) snapshot(f matrix.Formatter) string { return f.Augmented(s.a, s.b) }

func upperFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
