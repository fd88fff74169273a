// SPDX-License-Identifier: MIT

// Package matrix - deterministic number and snapshot formatting for step logs.
//
// Every number that appears in a step log goes through Formatter.Number so the
// rendered text is compact and byte-for-byte reproducible.

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Formatter renders numbers for human-readable step logs.
// Snap is the distance to the nearest integer under which a value prints as
// that integer.
type Formatter struct {
	Snap float64
}

// DefaultFormatter uses DefaultIntegerSnap.
var DefaultFormatter = Formatter{Snap: DefaultIntegerSnap}

// NewFormatter returns a Formatter with the given integer snap.
// Panics if snap is negative, NaN or Inf (programmer error).
func NewFormatter(snap float64) Formatter {
	if snap < 0 || math.IsNaN(snap) || math.IsInf(snap, 0) {
		panic(panicSnapInvalid)
	}

	return Formatter{Snap: snap}
}

// FormatNumber renders v with DefaultFormatter.
//
//	FormatNumber(3.0)     == "3"
//	FormatNumber(3.14159) == "3.1416"
//	FormatNumber(2.5)     == "2.5"
func FormatNumber(v float64) string { return DefaultFormatter.Number(v) }

// Number renders v as an integer when it is within f.Snap of one; otherwise
// with DefaultDecimals fractional digits, trailing zeros and a trailing point
// stripped. Negative zero prints as "0".
func (f Formatter) Number(v float64) string {
	if r := math.Round(v); math.Abs(v-r) <= f.Snap {
		if r == 0 {
			return "0"
		}
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', DefaultDecimals, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}

	return s
}

// Vector renders v as "[a, b, c]".
func (f Formatter) Vector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = f.Number(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatVector renders v with DefaultFormatter.
func FormatVector(v []float64) string { return DefaultFormatter.Vector(v) }

// Augmented renders the augmented matrix [A | b] one row per line:
//
//	[ 2  -1  1 |  8 ]
//	[ 0  4.5 7.5 | -12 ]
//
// Cells are right-aligned to the widest entry of their column. b may be nil,
// in which case only A is rendered (see Matrix).
// Reads a through At; a foreign At error renders as "?".
func (f Formatter) Augmented(a Matrix, b []float64) string {
	rows, cols := a.Rows(), a.Cols()
	width := cols
	if b != nil {
		width++
	}

	// Stage 1: format every cell once and track per-column width.
	cells := make([][]string, rows)
	widths := make([]int, width)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		cells[i] = make([]string, width)
		for j = 0; j < cols; j++ {
			if v, err = a.At(i, j); err != nil {
				cells[i][j] = "?"
			} else {
				cells[i][j] = f.Number(v)
			}
		}
		if b != nil && i < len(b) {
			cells[i][cols] = f.Number(b[i])
		}
		for j = 0; j < width; j++ {
			if len(cells[i][j]) > widths[j] {
				widths[j] = len(cells[i][j])
			}
		}
	}

	// Stage 2: assemble rows in fixed order.
	var sb strings.Builder
	for i = 0; i < rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("[ ")
		for j = 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(padLeft(cells[i][j], widths[j]))
		}
		if b != nil {
			sb.WriteString(" | ")
			sb.WriteString(padLeft(cells[i][cols], widths[cols]))
		}
		sb.WriteString(" ]")
	}

	return sb.String()
}

// Matrix renders a without a right-hand side column.
func (f Formatter) Matrix(a Matrix) string { return f.Augmented(a, nil) }

// FormatAugmented renders [A | b] with DefaultFormatter.
func FormatAugmented(a Matrix, b []float64) string { return DefaultFormatter.Augmented(a, b) }

// FormatMatrix renders A with DefaultFormatter.
func FormatMatrix(a Matrix) string { return DefaultFormatter.Matrix(a) }

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}

	return strings.Repeat(" ", w-len(s)) + s
}
