// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linstep/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDiagonalDominance(t *testing.T) {
	rep, err := matrix.CheckDiagonalDominance(MustRows(t, [][]float64{{4, 1}, {1, 3}}))
	require.NoError(t, err)
	assert.True(t, rep.Dominant)
	assert.True(t, rep.Strict)
	assert.Equal(t, []string{
		"Row 1: |4| (diagonal) vs 1 (off-diagonal sum) -> OK",
		"Row 2: |3| (diagonal) vs 1 (off-diagonal sum) -> OK",
	}, rep.Rows)
	assert.Contains(t, rep.Verdict, "strictly diagonally dominant")

	rep, err = matrix.CheckDiagonalDominance(MustRows(t, [][]float64{{1, 4}, {3, 1}}))
	require.NoError(t, err)
	assert.False(t, rep.Dominant)
	assert.False(t, rep.Strict)
	assert.Len(t, rep.Rows, 2)
	assert.Contains(t, rep.Rows[0], "NOT DOMINANT")
	assert.Contains(t, rep.Verdict, "NOT diagonally dominant")
}

func TestCheckDiagonalDominance_EqualityIsDominantButNotStrict(t *testing.T) {
	rep, err := matrix.CheckDiagonalDominance(MustRows(t, [][]float64{{2, -2}, {1, 3}}))
	require.NoError(t, err)
	assert.True(t, rep.Dominant)
	assert.False(t, rep.Strict)
	assert.Equal(t, "Row 1: |2| (diagonal) vs 2 (off-diagonal sum) -> OK", rep.Rows[0])
}

func TestCheckDiagonalDominance_Errors(t *testing.T) {
	_, err := matrix.CheckDiagonalDominance(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.CheckDiagonalDominance(MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
