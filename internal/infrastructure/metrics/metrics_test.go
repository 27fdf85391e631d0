package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Logins(t *testing.T) {
	m := New()

	m.LoginSucceeded()
	m.LoginFailed()
	m.LoginFailed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Logins.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Logins.WithLabelValues("failure")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.HTTPRequests.WithLabelValues("/sunmile/users", "GET", "200").Inc()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `sunmile_http_requests_total{method="GET",path="/sunmile/users",status="200"} 1`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
