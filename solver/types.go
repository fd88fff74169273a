// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"strings"
)

// Method identifies one of the four solvers. The set is closed; Run switches
// over it exhaustively.
type Method int

const (
	// MethodGauss is Gaussian elimination with adaptive partial pivoting.
	MethodGauss Method = iota
	// MethodGaussJordan is Gauss-Jordan reduction to the identity.
	MethodGaussJordan
	// MethodCramer is Cramer's rule.
	MethodCramer
	// MethodJacobi is Jacobi iteration.
	MethodJacobi

	methodCount // sentinel, keep last
)

// methodNames are the display names, indexed by Method.
var methodNames = [methodCount]string{
	MethodGauss:       "Gauss Elimination",
	MethodGaussJordan: "Gauss-Jordan",
	MethodCramer:      "Cramer",
	MethodJacobi:      "Jacobi",
}

// methodAliases maps extra lower-cased spellings to methods.
var methodAliases = map[string]Method{
	"gauss":                MethodGauss,
	"gauss eliminasi":      MethodGauss,
	"gaussian elimination": MethodGauss,
	"gauss-elimination":    MethodGauss,
	"gauss jordan":         MethodGaussJordan,
	"gaussjordan":          MethodGaussJordan,
	"cramer's rule":        MethodCramer,
	"cramers":              MethodCramer,
}

// Valid reports whether m is one of the four registered methods.
func (m Method) Valid() bool { return m >= 0 && m < methodCount }

// String returns the display name ("Gauss Elimination", …).
func (m Method) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// Iterative reports whether the method is iterative (soft termination).
func (m Method) Iterative() bool { return m == MethodJacobi }

// MarshalText encodes the display name.
func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, m)
	}

	return []byte(m.String()), nil
}

// UnmarshalText decodes any name accepted by ParseMethod.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// Methods lists the registry in display order.
func Methods() []Method {
	out := make([]Method, 0, methodCount)
	for m := Method(0); m < methodCount; m++ {
		out = append(out, m)
	}

	return out
}

// ParseMethod maps a display name (case-insensitive, surrounding spaces
// ignored) or a known alias to its Method.
//
// Errors: ErrUnknownMethod.
func ParseMethod(name string) (Method, error) {
	key := strings.TrimSpace(name)
	for m := Method(0); m < methodCount; m++ {
		if strings.EqualFold(key, methodNames[m]) {
			return m, nil
		}
	}
	if m, ok := methodAliases[strings.ToLower(key)]; ok {
		return m, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Step is one entry of the explanation log: a short label and free-form text,
// possibly a multi-line matrix snapshot.
type Step struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Result is produced once per solver invocation. Callers must treat it as
// read-only.
//
//   - Solution   — x, indexed by variable position.
//   - Steps      — the chronological explanation log.
//   - Iterations — iterations performed (Jacobi only; 0 for direct methods).
//   - Converged  — always true for direct methods; for Jacobi whether the
//     tolerance was reached before the iteration cap.
type Result struct {
	Method     Method    `json:"method"`
	Solution   []float64 `json:"solution"`
	Steps      []Step    `json:"steps"`
	Iterations int       `json:"iterations,omitempty"`
	Converged  bool      `json:"converged"`
}

// Validation is derived from (A, x, b): the residual A·x − b and its infinity norm.
type Validation struct {
	Residual        []float64 `json:"residual"`
	ResidualInfNorm float64   `json:"residual_inf_norm"`
}
