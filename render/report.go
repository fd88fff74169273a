// SPDX-License-Identifier: MIT

package render

import (
	"errors"

	"github.com/katalvlaran/linstep/input"
	"github.com/katalvlaran/linstep/matrix"
	"github.com/katalvlaran/linstep/solver"
)

// Error codes carried by Report.Code and the HTTP error body.
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnknownMethod = "UNKNOWN_METHOD"
	CodeSingular      = "SINGULAR_MATRIX"
	CodeZeroDiagonal  = "ZERO_DIAGONAL"
	CodeInternal      = "INTERNAL"
)

// Report is the serializable outcome of one solve, shared by the CLI's --json
// output and the HTTP API.
type Report struct {
	Method     string                  `json:"method"`
	Solution   []float64               `json:"solution,omitempty"`
	Steps      []solver.Step           `json:"steps"`
	Iterations int                     `json:"iterations,omitempty"`
	Converged  bool                    `json:"converged"`
	Validation *solver.Validation      `json:"validation,omitempty"`
	Dominance  *matrix.DominanceReport `json:"dominance,omitempty"`
	Error      string                  `json:"error,omitempty"`
	Code       string                  `json:"code,omitempty"`
}

// NewReport assembles a Report from a solver outcome. When err is non-nil the
// partial steps it carries (if any) are kept; res and val are then ignored.
func NewReport(m solver.Method, res *solver.Result, val *solver.Validation, dom *matrix.DominanceReport, err error) Report {
	rep := Report{Method: m.String(), Dominance: dom}
	if err != nil {
		rep.Steps = solver.PartialSteps(err)
		rep.Error = err.Error()
		rep.Code = ErrorCode(err)
		if rep.Steps == nil {
			rep.Steps = []solver.Step{}
		}
		return rep
	}
	rep.Solution = res.Solution
	rep.Steps = res.Steps
	rep.Iterations = res.Iterations
	rep.Converged = res.Converged
	rep.Validation = val

	return rep
}

// ErrorCode classifies err into one of the Code* constants.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, solver.ErrSingular):
		return CodeSingular
	case errors.Is(err, solver.ErrZeroDiagonal):
		return CodeZeroDiagonal
	case errors.Is(err, solver.ErrUnknownMethod):
		return CodeUnknownMethod
	case errors.Is(err, input.ErrNonNumeric),
		errors.Is(err, input.ErrInvalidDocument),
		errors.Is(err, input.ErrEmptyDocument),
		errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, matrix.ErrInvalidDimensions),
		errors.Is(err, matrix.ErrBadShape),
		errors.Is(err, matrix.ErrNaNInf),
		errors.Is(err, matrix.ErrNilMatrix):
		return CodeInvalidInput
	default:
		return CodeInternal
	}
}
