// SPDX-License-Identifier: MIT

package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/linstep/matrix"
	"gopkg.in/yaml.v3"
)

// Cell is one raw entry as the user wrote it. Documents may carry numbers or
// quoted strings; both keep their literal text until ParseCells converts them.
type Cell string

// UnmarshalYAML accepts any scalar node.
func (c *Cell) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number: %w", n.Line, ErrNonNumeric)
	}
	*c = Cell(n.Value)

	return nil
}

// UnmarshalJSON accepts a JSON number, a string or null (an empty cell).
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*c = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Cell(s)
	case len(data) > 0 && (data[0] == '[' || data[0] == '{'):
		return fmt.Errorf("expected a number, got %s: %w", data, ErrNonNumeric)
	default:
		*c = Cell(data)
	}

	return nil
}

// Float parses the cell strictly. Surrounding whitespace is ignored.
func (c Cell) Float() (float64, error) {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return 0, ErrNonNumeric
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNonNumeric)
	}

	return v, nil
}

// Cells converts float rows into cells, e.g. to build a Document in code.
func Cells(rows [][]float64) [][]Cell {
	out := make([][]Cell, len(rows))
	for i, r := range rows {
		out[i] = Vector(r)
	}

	return out
}

// Vector converts a float slice into cells.
func Vector(v []float64) []Cell {
	out := make([]Cell, len(v))
	for i, x := range v {
		out[i] = Cell(strconv.FormatFloat(x, 'g', -1, 64))
	}

	return out
}

// ParseMatrix converts a grid of cells into a Dense matrix.
//
// Errors: ErrNonNumeric (with "row i, column j", 1-based), matrix.ErrInvalidDimensions
// for an empty or ragged grid.
func ParseMatrix(cells [][]Cell) (*matrix.Dense, error) {
	rows := make([][]float64, len(cells))
	for i, r := range cells {
		rows[i] = make([]float64, len(r))
		for j, c := range r {
			v, err := c.Float()
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", i+1, j+1, err)
			}
			rows[i][j] = v
		}
	}

	return matrix.NewFromRows(rows)
}

// ParseVector converts the right-hand side cells.
//
// Errors: ErrNonNumeric (with "b[i]", 1-based).
func ParseVector(cells []Cell) ([]float64, error) {
	out := make([]float64, len(cells))
	for i, c := range cells {
		v, err := c.Float()
		if err != nil {
			return nil, fmt.Errorf("b[%d]: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

// ParseCells converts a coefficient grid and right-hand side into a system and
// validates it (square, 2 ≤ n ≤ 6, len(b) == n, finite).
func ParseCells(a [][]Cell, b []Cell) (*matrix.Dense, []float64, error) {
	m, err := ParseMatrix(a)
	if err != nil {
		return nil, nil, err
	}
	v, err := ParseVector(b)
	if err != nil {
		return nil, nil, err
	}
	if err = matrix.ValidateSystem(m, v); err != nil {
		return nil, nil, err
	}

	return m, v, nil
}
