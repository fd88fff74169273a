// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/linstep/matrix"
)

// Run validates (a, b) and dispatches to the solver for m.
// An out-of-range Method fails with ErrUnknownMethod.
func Run(m Method, a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, m)
	}
	if err := ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", m, err)
	}

	switch m {
	case MethodGauss:
		return Gauss(a, b, opts...)
	case MethodGaussJordan:
		return GaussJordan(a, b, opts...)
	case MethodCramer:
		return Cramer(a, b, opts...)
	case MethodJacobi:
		return Jacobi(a, b, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, m)
	}
}

// RunByName is ParseMethod followed by Run.
func RunByName(name string, a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	m, err := ParseMethod(name)
	if err != nil {
		return nil, err
	}

	return Run(m, a, b, opts...)
}
