// SPDX-License-Identifier: MIT

// Package solver: functional options and documented defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: With* constructors panic only on nonsensical
//     values (programmer error); solvers never panic on user input.
package solver

import (
	"math"

	"github.com/katalvlaran/linstep/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the threshold under which a pivot, a whole
	// candidate column or a determinant is treated as zero.
	DefaultPivotTolerance = 1e-12

	// DefaultTolerance is the Jacobi stopping threshold on ‖x_new − x‖∞.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps Jacobi iterations.
	DefaultMaxIterations = 50

	// DefaultIntegerSnap is the display snap used when formatting step text.
	DefaultIntegerSnap = matrix.DefaultIntegerSnap
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotTolInvalid = "solver: WithPivotTolerance: tol must be finite, non-negative"
	panicToleranceBad    = "solver: WithTolerance: tol must be finite, > 0"
	panicMaxIterBad      = "solver: WithMaxIterations: n must be > 0"
	panicSnapInvalid     = "solver: WithIntegerSnap: snap must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option.
type Options struct {
	pivotTol  float64 // DefaultPivotTolerance
	tolerance float64 // DefaultTolerance (Jacobi)
	maxIter   int     // DefaultMaxIterations (Jacobi)
	snap      float64 // DefaultIntegerSnap (formatting)
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		pivotTol:  DefaultPivotTolerance,
		tolerance: DefaultTolerance,
		maxIter:   DefaultMaxIterations,
		snap:      DefaultIntegerSnap,
	}
}

// PivotTolerance returns the effective zero threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// Tolerance returns the effective Jacobi tolerance.
func (o Options) Tolerance() float64 { return o.tolerance }

// MaxIterations returns the effective Jacobi iteration cap.
func (o Options) MaxIterations() int { return o.maxIter }

// IntegerSnap returns the effective display snap.
func (o Options) IntegerSnap() float64 { return o.snap }

// WithPivotTolerance sets the zero threshold used for pivots and determinants.
// Panics if tol is negative, NaN or Inf.
func WithPivotTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithTolerance sets the Jacobi stopping threshold.
// Panics if tol is not a finite positive number.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceBad)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations sets the Jacobi iteration cap. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterBad)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithIntegerSnap sets the distance-to-integer under which step text prints
// integers. Panics if snap is negative, NaN or Inf.
func WithIntegerSnap(snap float64) Option {
	if snap < 0 || math.IsNaN(snap) || math.IsInf(snap, 0) {
		panic(panicSnapInvalid)
	}

	return func(o *Options) { o.snap = snap }
}

// gatherOptions applies opts over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func (o Options) formatter() matrix.Formatter { return matrix.Formatter{Snap: o.snap} }
