// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linstep/matrix"
)

// system is a solver's private copy of (A, b). Row indices handed to its
// helpers are always in range by construction.
type system struct {
	a *matrix.Dense
	b []float64
	n int
}

// newSystem validates (a, b) and deep-copies both.
func newSystem(a matrix.Matrix, b []float64) (*system, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, err
	}
	d, err := matrix.DenseOf(a)
	if err != nil {
		return nil, err
	}
	bb := make([]float64, len(b))
	copy(bb, b)

	return &system{a: d, b: bb, n: d.Rows()}, nil
}

// row returns a live view of row i of the working matrix.
func (s *system) row(i int) []float64 {
	r, _ := s.a.RowView(i)
	return r
}

// swap exchanges rows i and j in both A and b.
func (s *system) swap(i, j int) {
	_ = s.a.SwapRows(i, j)
	s.b[i], s.b[j] = s.b[j], s.b[i]
}

// pivotRow returns argmax_{i≥k} |A[i][k]|; the lowest index wins ties.
func (s *system) pivotRow(k int) int {
	best, bestAbs := k, math.Abs(s.row(k)[k])
	for i := k + 1; i < s.n; i++ {
		if v := math.Abs(s.row(i)[k]); v > bestAbs {
			best, bestAbs = i, v
		}
	}

	return best
}

// recorder accumulates the append-only step log.
type recorder struct {
	steps []Step
	f     matrix.Formatter
}

func newRecorder(o Options) *recorder {
	return &recorder{f: o.formatter()}
}

func (r *recorder) add(title, content string) {
	r.steps = append(r.steps, Step{Title: title, Content: content})
}

func (r *recorder) addf(title, format string, args ...any) {
	r.add(title, fmt.Sprintf(format, args...))
}

// num is shorthand for the recorder's number formatting.
func (r *recorder) num(v float64) string { return r.f.Number(v) }

// fail wraps err into a SolveError that keeps a copy of the log so far.
func (r *recorder) fail(m Method, err error) error {
	steps := make([]Step, len(r.steps))
	copy(steps, r.steps)

	return &SolveError{Method: m, Steps: steps, Err: err}
}
