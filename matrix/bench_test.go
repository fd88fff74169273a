// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linstep/matrix"
)

// benchRows is a 6×6 strictly diagonally dominant system, the largest supported order.
var benchRows = [][]float64{
	{10, 1, 2, 0, 1, 3},
	{1, 12, 0, 2, 3, 1},
	{2, 0, 9, 1, 0, 2},
	{0, 2, 1, 11, 4, 1},
	{1, 3, 0, 4, 14, 2},
	{3, 1, 2, 1, 2, 13},
}

func BenchmarkDeterminant6x6(b *testing.B) {
	a := MustRows(b, benchRows)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Determinant(a)
	}
}

func BenchmarkFormatAugmented6x6(b *testing.B) {
	a := MustRows(b, benchRows)
	rhs := []float64{1, 2, 3, 4, 5, 6}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = matrix.FormatAugmented(a, rhs)
	}
}
