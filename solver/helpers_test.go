// SPDX-License-Identifier: MIT
package solver_test

import (
	"testing"

	"github.com/katalvlaran/linstep/matrix"
	"github.com/stretchr/testify/require"
)

// mustRows builds a *Dense from row literals or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// fixture is a well-conditioned system with a known solution.
type fixture struct {
	name string
	a    [][]float64
	x    []float64
}

// rhs returns b = A·x for the fixture.
func (f fixture) rhs(t testing.TB) []float64 {
	t.Helper()
	b, err := matrix.MatVec(mustRows(t, f.a), f.x)
	require.NoError(t, err)

	return b
}

var wellConditioned = []fixture{
	{"2x2 dominant", [][]float64{{4, 1}, {1, 3}}, []float64{1, 2}},
	{"3x3 textbook", [][]float64{{2, -1, 1}, {3, 3, 9}, {3, 3, 5}}, []float64{1, 2, 3}},
	{"3x3 zero pivot", [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}}, []float64{-1, 0.5, 4}},
	{"4x4 mixed", [][]float64{{1, 2, 0, 1}, {3, 1, 4, 0}, {0, 5, 1, 2}, {2, 0, 1, 6}}, []float64{1, -1, 2, 0.25}},
	{"6x6 dominant", [][]float64{
		{10, 1, 2, 0, 1, 3},
		{1, 12, 0, 2, 3, 1},
		{2, 0, 9, 1, 0, 2},
		{0, 2, 1, 11, 4, 1},
		{1, 3, 0, 4, 14, 2},
		{3, 1, 2, 1, 2, 13},
	}, []float64{1, -2, 3, -4, 5, -6}},
}
