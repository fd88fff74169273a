// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/linstep/matrix"
	"github.com/katalvlaran/linstep/solver"
	"gopkg.in/yaml.v3"
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New()

// Document is a serialized system with optional solver settings. The same
// shape is accepted as YAML, as JSON, and as the HTTP request body.
//
//	method: gauss-jordan
//	a:
//	  - [2, -1, 1]
//	  - [3, 3, 9]
//	  - [3, 3, 5]
//	b: [3, 36, 24]
//
// MaxIterations is capped at 1000: Jacobi logs one step per iteration and the
// whole log is returned.
type Document struct {
	Method         string   `yaml:"method,omitempty" json:"method,omitempty" validate:"omitempty,max=64"`
	A              [][]Cell `yaml:"a" json:"a" validate:"required,min=2,max=6,dive,min=2,max=6"`
	B              []Cell   `yaml:"b" json:"b" validate:"required,min=2,max=6"`
	Tolerance      float64  `yaml:"tolerance,omitempty" json:"tolerance,omitempty" validate:"gte=0,lte=1"`
	MaxIterations  int      `yaml:"max_iterations,omitempty" json:"max_iterations,omitempty" validate:"gte=0,lte=1000"`
	PivotTolerance float64  `yaml:"pivot_tolerance,omitempty" json:"pivot_tolerance,omitempty" validate:"gte=0,lte=1"`
}

// Validate checks the document structure. It does not parse cells; System
// does that with row/column context.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return nil
}

// System validates the document and parses it into (A, b).
func (d *Document) System() (*matrix.Dense, []float64, error) {
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}

	return ParseCells(d.A, d.B)
}

// SolverMethod resolves Method, falling back to def when it is empty.
//
// Errors: solver.ErrUnknownMethod.
func (d *Document) SolverMethod(def solver.Method) (solver.Method, error) {
	if strings.TrimSpace(d.Method) == "" {
		return def, nil
	}

	return solver.ParseMethod(d.Method)
}

// Options appends the document's non-zero settings to base, so per-document
// values override configured defaults.
func (d *Document) Options(base ...solver.Option) []solver.Option {
	opts := append([]solver.Option(nil), base...)
	if d.Tolerance > 0 {
		opts = append(opts, solver.WithTolerance(d.Tolerance))
	}
	if d.MaxIterations > 0 {
		opts = append(opts, solver.WithMaxIterations(d.MaxIterations))
	}
	if d.PivotTolerance > 0 {
		opts = append(opts, solver.WithPivotTolerance(d.PivotTolerance))
	}

	return opts
}

// Decode reads one YAML (or JSON, a YAML subset) document from r.
// Unknown fields are rejected.
//
// Errors: ErrEmptyDocument, ErrNonNumeric, ErrInvalidDocument, or a yaml syntax error.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Document
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		if errors.Is(err, ErrNonNumeric) {
			return nil, err
		}
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// ParseText reads an augmented matrix, one row [a_i1 … a_in b_i] per line.
// Values are separated by whitespace or commas; blank lines and lines starting
// with '#' are ignored.
//
// Errors: ErrEmptyDocument, ErrNonNumeric, plus ParseCells errors.
func ParseText(r io.Reader) (*Document, error) {
	var (
		sc   = bufio.NewScanner(r)
		rows [][]Cell
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		row := make([]Cell, len(fields))
		for j, f := range fields {
			row[j] = Cell(f)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDocument
	}

	d := &Document{A: make([][]Cell, len(rows)), B: make([]Cell, len(rows))}
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("line %d: need coefficients and a right-hand side: %w", i+1, ErrInvalidDocument)
		}
		d.A[i] = row[:len(row)-1]
		d.B[i] = row[len(row)-1]
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// Load reads a document from path, choosing the format by extension:
// .yaml, .yml and .json are documents; .txt, .csv and .dat are plain text.
// "-" reads a YAML/JSON document from stdin.
func Load(path string) (*Document, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return Decode(bytes.NewReader(raw))
	case ".txt", ".csv", ".dat":
		return ParseText(bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}
