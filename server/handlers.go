// SPDX-License-Identifier: MIT

package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/linstep/input"
	"github.com/katalvlaran/linstep/matrix"
	"github.com/katalvlaran/linstep/render"
	"github.com/katalvlaran/linstep/solver"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every request-level failure.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// DominanceRequest is the body of POST /v1/dominance.
type DominanceRequest struct {
	A [][]input.Cell `json:"a"`
}

// MethodInfo is one entry of GET /v1/methods.
type MethodInfo struct {
	Name      string `json:"name"`
	Iterative bool   `json:"iterative"`
	Default   bool   `json:"default"`
}

// CompareEntry is one method's row in CompareResponse.
type CompareEntry struct {
	Method          string    `json:"method"`
	Solution        []float64 `json:"solution,omitempty"`
	Iterations      int       `json:"iterations,omitempty"`
	Converged       bool      `json:"converged"`
	ResidualInfNorm float64   `json:"residual_inf_norm,omitempty"`
	Error           string    `json:"error,omitempty"`
	Code            string    `json:"code,omitempty"`
}

// CompareResponse is the body of POST /v1/compare.
type CompareResponse struct {
	Entries         []CompareEntry `json:"entries"`
	MaxDisagreement float64        `json:"max_disagreement"`
}

// statusFor maps a render error code to an HTTP status.
func statusFor(code string) int {
	switch code {
	case render.CodeSingular, render.CodeZeroDiagonal:
		return http.StatusUnprocessableEntity
	case render.CodeInvalidInput, render.CodeUnknownMethod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// resultLabel classifies a successful solve for solvesTotal.
func resultLabel(res *solver.Result) string {
	if !res.Converged {
		return resultNotConverged
	}

	return resultOK
}

func (s *Server) logger(c *gin.Context, handler string) *zap.Logger {
	return s.log.With(zap.String("request_id", c.GetString(ctxRequestID)), zap.String("handler", handler))
}

// fail writes an ErrorResponse classified by render.ErrorCode.
func fail(c *gin.Context, log *zap.Logger, err error) {
	code := render.ErrorCode(err)
	status := statusFor(code)
	log.Warn("request rejected", zap.String("code", code), zap.Error(err))
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

// bindDocument decodes and resolves the common solve/compare body.
func (s *Server) bindDocument(c *gin.Context, log *zap.Logger) (*input.Document, *matrix.Dense, []float64, bool) {
	var doc input.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		log.Warn("Invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error(), Code: "INVALID_REQUEST"})
		return nil, nil, nil, false
	}
	a, b, err := doc.System()
	if err != nil {
		fail(c, log, err)
		return nil, nil, nil, false
	}

	return &doc, a, b, true
}

// HandleSolve handles POST /v1/solve.
//
// Response:
//
//	200 OK: render.Report
//	400 Bad Request: ErrorResponse (malformed body, bad cells, unknown method)
//	422 Unprocessable Entity: render.Report with the partial steps
func (s *Server) HandleSolve(c *gin.Context) {
	log := s.logger(c, "HandleSolve")
	doc, a, b, ok := s.bindDocument(c, log)
	if !ok {
		return
	}
	m, err := doc.SolverMethod(s.method)
	if err != nil {
		fail(c, log, err)
		return
	}
	dom, err := matrix.CheckDiagonalDominance(a)
	if err != nil {
		fail(c, log, err)
		return
	}

	systemOrder.Observe(float64(a.Rows()))
	start := time.Now()
	res, err := solver.Run(m, a, b, doc.Options(s.opts...)...)
	solveDuration.WithLabelValues(m.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		solvesTotal.WithLabelValues(m.String(), resultFailed).Inc()
		rep := render.NewReport(m, nil, nil, &dom, err)
		log.Info("solve failed", zap.String("method", m.String()), zap.String("code", rep.Code), zap.Error(err))
		c.JSON(statusFor(rep.Code), rep)
		return
	}
	val, err := solver.ValidateSolution(a, b, res.Solution)
	if err != nil {
		fail(c, log, err)
		return
	}

	solvesTotal.WithLabelValues(m.String(), resultLabel(res)).Inc()
	log.Debug("solved",
		zap.String("method", m.String()),
		zap.Int("n", a.Rows()),
		zap.Int("steps", len(res.Steps)),
		zap.Float64("residual", val.ResidualInfNorm))

	c.JSON(http.StatusOK, render.NewReport(m, res, val, &dom, nil))
}

// HandleCompare handles POST /v1/compare. Per-method failures are reported in
// the entries; the status is 200 whenever the input itself is valid.
func (s *Server) HandleCompare(c *gin.Context) {
	log := s.logger(c, "HandleCompare")
	doc, a, b, ok := s.bindDocument(c, log)
	if !ok {
		return
	}
	rep, err := solver.Compare(a, b, doc.Options(s.opts...)...)
	if err != nil {
		fail(c, log, err)
		return
	}

	resp := CompareResponse{Entries: make([]CompareEntry, 0, len(rep.Entries)), MaxDisagreement: rep.MaxDisagreement}
	for _, e := range rep.Entries {
		entry := CompareEntry{Method: e.Method.String()}
		if e.Err != nil {
			entry.Error = e.Err.Error()
			entry.Code = render.ErrorCode(e.Err)
			solvesTotal.WithLabelValues(e.Method.String(), resultFailed).Inc()
		} else {
			entry.Solution = e.Result.Solution
			entry.Iterations = e.Result.Iterations
			entry.Converged = e.Result.Converged
			entry.ResidualInfNorm = e.Validation.ResidualInfNorm
			solvesTotal.WithLabelValues(e.Method.String(), resultLabel(e.Result)).Inc()
		}
		resp.Entries = append(resp.Entries, entry)
	}
	c.JSON(http.StatusOK, resp)
}

// HandleDominance handles POST /v1/dominance.
func (s *Server) HandleDominance(c *gin.Context) {
	log := s.logger(c, "HandleDominance")
	var req DominanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	a, err := input.ParseMatrix(req.A)
	if err != nil {
		fail(c, log, err)
		return
	}
	if err = matrix.ValidateOrder(a.Rows(), matrix.MinOrder, matrix.MaxOrder); err != nil {
		fail(c, log, err)
		return
	}
	rep, err := matrix.CheckDiagonalDominance(a)
	if err != nil {
		fail(c, log, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// HandleMethods handles GET /v1/methods.
func (s *Server) HandleMethods(c *gin.Context) {
	ms := solver.Methods()
	out := make([]MethodInfo, len(ms))
	for i, m := range ms {
		out[i] = MethodInfo{Name: m.String(), Iterative: m.Iterative(), Default: m == s.method}
	}
	c.JSON(http.StatusOK, out)
}

// HandleHealth handles GET /healthz.
func (s *Server) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
