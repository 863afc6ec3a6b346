package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.routes()

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	handler.ServeHTTP(httptest.NewRecorder(), r)

	r = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "api_http_requests_total")
	assert.Contains(t, body, "api_http_request_duration_seconds")
	assert.Contains(t, body, `api_http_requests_total{method="GET",route="/health",status="200"}`)
}

func TestMetricsMiddleware_CountsByRouteAndStatus(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.routes()

	okBefore := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/info", http.MethodGet, "200"))
	missBefore := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/nope", http.MethodGet, "404"))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/info", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	okAfter := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/info", http.MethodGet, "200"))
	missAfter := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/nope", http.MethodGet, "404"))

	assert.Equal(t, okBefore+1, okAfter)
	assert.Equal(t, missBefore+1, missAfter, "unmatched paths are labelled by raw path")
}
