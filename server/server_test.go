// SPDX-License-Identifier: MIT
package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/katalvlaran/linstep/config"
	"github.com/katalvlaran/linstep/matrix"
	"github.com/katalvlaran/linstep/render"
	"github.com/katalvlaran/linstep/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newServer(t *testing.T, mutate ...func(*config.Config)) *server.Server {
	t.Helper()
	cfg := config.Default()
	for _, fn := range mutate {
		fn(&cfg)
	}
	s, err := server.New(cfg, zap.NewNop())
	require.NoError(t, err)

	return s
}

func do(t *testing.T, s *server.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

const textbook = `{"a": [[2, -1, 1], [3, 3, 9], [3, 3, 5]], "b": [3, 36, 24]}`

func TestHandleSolve_Default(t *testing.T) {
	s := newServer(t)
	w := do(t, s, http.MethodPost, "/v1/solve", textbook)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	rep := decode[render.Report](t, w)
	assert.Equal(t, "Gauss Elimination", rep.Method)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, rep.Solution, 1e-9)
	assert.True(t, rep.Converged)
	require.NotEmpty(t, rep.Steps)
	assert.Equal(t, "Execution mode", rep.Steps[0].Title)
	require.NotNil(t, rep.Validation)
	assert.Less(t, rep.Validation.ResidualInfNorm, 1e-9)
	require.NotNil(t, rep.Dominance)
	assert.False(t, rep.Dominance.Dominant)
}

func TestHandleSolve_MethodAndRequestID(t *testing.T) {
	s := newServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/solve",
		strings.NewReader(`{"method": "jacobi", "a": [[10, 1], [1, 7]], "b": [11, 8], "tolerance": 1e-9}`))
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	rep := decode[render.Report](t, w)
	assert.Equal(t, "Jacobi", rep.Method)
	assert.True(t, rep.Converged)
	assert.Positive(t, rep.Iterations)
	assert.InDeltaSlice(t, []float64{1, 1}, rep.Solution, 1e-8)
}

func TestHandleSolve_Errors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed", `{"a": [[1, 2]`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"non-numeric", `{"a": [[1, "x"], [3, 4]], "b": [1, 2]}`, http.StatusBadRequest, render.CodeInvalidInput},
		{"mismatch", `{"a": [[1, 2], [3, 4]], "b": [1, 2, 3]}`, http.StatusBadRequest, render.CodeInvalidInput},
		{"missing b", `{"a": [[1, 2], [3, 4]]}`, http.StatusBadRequest, render.CodeInvalidInput},
		{"unknown method", `{"method": "lu", "a": [[1, 2], [3, 4]], "b": [1, 2]}`, http.StatusBadRequest, render.CodeUnknownMethod},
	}
	s := newServer(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/v1/solve", tc.body)
			require.Equal(t, tc.status, w.Code, w.Body.String())
			resp := decode[server.ErrorResponse](t, w)
			assert.Equal(t, tc.code, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleSolve_SolverFailureKeepsSteps(t *testing.T) {
	s := newServer(t)

	w := do(t, s, http.MethodPost, "/v1/solve", `{"method": "cramer", "a": [[1, 2], [2, 4]], "b": [1, 2]}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	rep := decode[render.Report](t, w)
	assert.Equal(t, render.CodeSingular, rep.Code)
	require.Len(t, rep.Steps, 2)
	assert.Equal(t, "No unique solution", rep.Steps[1].Title)
	assert.Empty(t, rep.Solution)

	w = do(t, s, http.MethodPost, "/v1/solve", `{"method": "jacobi", "a": [[0, 1], [1, 0]], "b": [1, 1]}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, render.CodeZeroDiagonal, decode[render.Report](t, w).Code)
}

func TestHandleSolve_JacobiDivergenceEncodes(t *testing.T) {
	s := newServer(t)
	w := do(t, s, http.MethodPost, "/v1/solve",
		`{"method": "Jacobi", "a": [[1, 4], [3, 1]], "b": [5, 4], "max_iterations": 1000}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotZero(t, w.Body.Len())

	rep := decode[render.Report](t, w)
	assert.False(t, rep.Converged)
	require.NotEmpty(t, rep.Steps)
	assert.Equal(t, "Diverged", rep.Steps[len(rep.Steps)-1].Title)
	require.Len(t, rep.Solution, 2)
	require.NotNil(t, rep.Validation)
}

func TestHandleSolve_MaxIterationsCap(t *testing.T) {
	s := newServer(t)
	w := do(t, s, http.MethodPost, "/v1/solve",
		`{"method": "Jacobi", "a": [[10, 1], [1, 7]], "b": [11, 8], "max_iterations": 2000}`)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, render.CodeInvalidInput, decode[server.ErrorResponse](t, w).Code)
}

func TestHandleSolve_BodyLimit(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Server.MaxBodyBytes = 16 })
	w := do(t, s, http.MethodPost, "/v1/solve", textbook)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCompare(t *testing.T) {
	s := newServer(t)
	w := do(t, s, http.MethodPost, "/v1/compare", `{"a": [[0, 1], [1, 0]], "b": [2, 3]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[server.CompareResponse](t, w)
	require.Len(t, resp.Entries, 4)
	assert.Equal(t, "Gauss Elimination", resp.Entries[0].Method)
	assert.InDeltaSlice(t, []float64{3, 2}, resp.Entries[0].Solution, 1e-12)
	assert.Equal(t, "Jacobi", resp.Entries[3].Method)
	assert.Equal(t, render.CodeZeroDiagonal, resp.Entries[3].Code)
	assert.InDelta(t, 0, resp.MaxDisagreement, 1e-12)
}

func TestHandleDominance(t *testing.T) {
	s := newServer(t)
	w := do(t, s, http.MethodPost, "/v1/dominance", `{"a": [[4, 1], [1, 3]]}`)
	require.Equal(t, http.StatusOK, w.Code)
	rep := decode[matrix.DominanceReport](t, w)
	assert.True(t, rep.Strict)
	assert.Len(t, rep.Rows, 2)

	w = do(t, s, http.MethodPost, "/v1/dominance", `{"a": [[4]]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPost, "/v1/dominance", `{"a": [[4, 1, 2], [1, 3, 0]]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleMethods(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Solver.DefaultMethod = "Cramer" })
	w := do(t, s, http.MethodGet, "/v1/methods", "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[[]server.MethodInfo](t, w)
	require.Len(t, got, 4)
	assert.Equal(t, server.MethodInfo{Name: "Cramer", Default: true}, got[2])
	assert.True(t, got[3].Iterative)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newServer(t)
	w := do(t, s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	do(t, s, http.MethodPost, "/v1/solve", textbook)
	w = do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "linstep_solves_total")
	assert.Contains(t, w.Body.String(), "linstep_http_requests_total")
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Solver.DefaultMethod = "lu"
	_, err := server.New(cfg, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestServe_GracefulShutdown(t *testing.T) {
	s := newServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	client := &http.Client{}
	resp, err := client.Post("http://"+ln.Addr().String()+"/v1/solve", "application/json", bytes.NewBufferString(textbook))
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	client.CloseIdleConnections()

	cancel()
	require.NoError(t, <-done)
}
