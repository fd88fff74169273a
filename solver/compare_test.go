// SPDX-License-Identifier: MIT
package solver_test

import (
	"testing"

	"github.com/katalvlaran/linstep/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_AllSucceed(t *testing.T) {
	rep, err := solver.Compare(mustRows(t, [][]float64{{10, 1}, {1, 7}}), []float64{11, 8})
	require.NoError(t, err)

	require.Len(t, rep.Entries, 4)
	for i, e := range rep.Entries {
		assert.Equal(t, solver.Methods()[i], e.Method)
		require.NoError(t, e.Err)
		require.NotNil(t, e.Validation)
		assert.Less(t, e.Validation.ResidualInfNorm, 1e-5)
	}
	assert.Less(t, rep.MaxDisagreement, 1e-6)
}

func TestCompare_MixedOutcomes(t *testing.T) {
	rep, err := solver.Compare(mustRows(t, [][]float64{{0, 1}, {1, 0}}), []float64{2, 3})
	require.NoError(t, err)

	byMethod := map[solver.Method]solver.Comparison{}
	for _, e := range rep.Entries {
		byMethod[e.Method] = e
	}
	require.NoError(t, byMethod[solver.MethodGauss].Err)
	assert.InDeltaSlice(t, []float64{3, 2}, byMethod[solver.MethodGauss].Result.Solution, 1e-12)
	assert.ErrorIs(t, byMethod[solver.MethodJacobi].Err, solver.ErrZeroDiagonal)
	assert.Nil(t, byMethod[solver.MethodJacobi].Result)
	assert.InDelta(t, 0, rep.MaxDisagreement, 1e-12)
}

func TestCompare_InvalidInput(t *testing.T) {
	_, err := solver.Compare(mustRows(t, [][]float64{{1, 2}, {3, 4}}), []float64{1})
	require.ErrorIs(t, err, solver.ErrDimensionMismatch)
}
