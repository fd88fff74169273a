// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/linstep/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", (*matrix.Dense)(nil), matrix.ErrNilMatrix},
		{"1x1", zeros(1, 1), nil},
		{"3x3", zeros(3, 3), nil},
		{"2x3", zeros(2, 3), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.want),
					"expected errors.Is(%v, %v)", err, tc.want)
			}
		})
	}
}

// TestValidateSystem walks the guard sequence NotNil → Square → Order → VecLen → Finite.
func TestValidateSystem(t *testing.T) {
	t.Parallel()

	sq := func(n int) matrix.Matrix {
		m, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		return m
	}
	nonFinite, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	tests := []struct {
		name string
		a    matrix.Matrix
		b    []float64
		want error
	}{
		{"ok 2x2", sq(2), []float64{1, 2}, nil},
		{"ok 6x6", sq(6), make([]float64, 6), nil},
		{"nil matrix", nil, []float64{1, 2}, matrix.ErrNilMatrix},
		{"non-square", func() matrix.Matrix { m, _ := matrix.NewDense(2, 3); return m }(), []float64{1, 2}, matrix.ErrDimensionMismatch},
		{"too small", sq(1), []float64{1}, matrix.ErrBadShape},
		{"too large", sq(7), make([]float64, 7), matrix.ErrBadShape},
		{"nil rhs", sq(2), nil, matrix.ErrNilMatrix},
		{"short rhs", sq(3), []float64{1, 2}, matrix.ErrDimensionMismatch},
		{"NaN rhs", sq(2), []float64{1, math.NaN()}, matrix.ErrNaNInf},
		{"Inf in A via foreign impl", hide{infAt(t, nonFinite)}, []float64{1, 2}, matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSystem(tc.a, tc.b)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// infMatrix reports +Inf at (0,0) regardless of storage; Dense itself refuses to store it.
type infMatrix struct{ matrix.Matrix }

func (m infMatrix) At(i, j int) (float64, error) {
	if i == 0 && j == 0 {
		return math.Inf(1), nil
	}
	return m.Matrix.At(i, j)
}

func infAt(t *testing.T, m matrix.Matrix) matrix.Matrix {
	t.Helper()
	return infMatrix{m}
}
