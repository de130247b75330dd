package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	m := NewManager()

	m.RecordHTTPRequest("/api/zoos", http.MethodGet, "200", 15*time.Millisecond)
	m.RecordHTTPRequest("/api/zoos", http.MethodGet, "200", 5*time.Millisecond)
	m.RecordHTTPRequest("/api/zoos/:id", http.MethodDelete, "404", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/zoos", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/zoos/:id", http.MethodDelete, "404")))
}

func TestRecordStoreError(t *testing.T) {
	m := NewManager()

	m.RecordStoreError("bears", "create")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeErrors.WithLabelValues("bears", "create")))
}

func TestManagersAreIndependent(t *testing.T) {
	a := NewManager()
	b := NewManager()

	a.RecordStoreError("zoos", "list")

	assert.Equal(t, 0.0, testutil.ToFloat64(b.storeErrors.WithLabelValues("zoos", "list")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewManager(WithNamespace("test_ns"))
	m.RecordHTTPRequest("/api/bears", http.MethodPost, "201", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `test_ns_http_requests_total{method="POST",route="/api/bears",status_code="201"} 1`)
}
