package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOrderAndClient(t *testing.T) {
	before := testutil.ToFloat64(orderOperations.WithLabelValues(OpCreate))
	RecordOrder(OpCreate)
	RecordOrder(OpCreate)
	assert.Equal(t, before+2, testutil.ToFloat64(orderOperations.WithLabelValues(OpCreate)))

	before = testutil.ToFloat64(clientOperations.WithLabelValues(OpDelete))
	RecordClient(OpDelete)
	assert.Equal(t, before+1, testutil.ToFloat64(clientOperations.WithLabelValues(OpDelete)))
}

func TestHandlerExposesRequests(t *testing.T) {
	RequestStarted()
	RequestFinished("GET", "/pedidos/:id", "200", 0.01)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `natura_http_requests_total{method="GET",path="/pedidos/:id",status="200"}`)
	assert.Contains(t, rec.Body.String(), "natura_http_inflight_requests 0")
}
