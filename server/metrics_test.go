// SPDX-License-Identifier: MIT
package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/katalvlaran/linstep/config"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestSolvesTotal_NotConvergedLabel checks that solve and compare classify a
// Jacobi run that hits its cap the same way.
func TestSolvesTotal_NotConvergedLabel(t *testing.T) {
	s, err := New(config.Default(), zap.NewNop())
	require.NoError(t, err)

	const body = `{"method": "Jacobi", "a": [[1, 4], [3, 1]], "b": [5, 4], "max_iterations": 10}`
	jacobi := func(result string) float64 {
		return testutil.ToFloat64(solvesTotal.WithLabelValues("Jacobi", result))
	}

	for _, path := range []string{"/v1/solve", "/v1/compare"} {
		t.Run(path, func(t *testing.T) {
			ok, notConverged := jacobi(resultOK), jacobi(resultNotConverged)

			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			s.Handler().ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			assert.Equal(t, ok, jacobi(resultOK))
			assert.Equal(t, notConverged+1, jacobi(resultNotConverged))
		})
	}
}
