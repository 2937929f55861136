package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("availability-test", prometheus.NewRegistry())

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/businesses/{businessId}/available-slots", http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/businesses/{businessId}/available-slots", http.StatusOK, 20*time.Millisecond)
	m.ObserveHoursResolution("default")
	m.ObserveCacheLookup("miss")
	m.ObserveCacheLookup("miss")
	m.ObserveDBQuery("query_row", errors.New("boom"), time.Millisecond)
	m.SetDBConnections(5, 2, 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/businesses/{businessId}/available-slots", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.hoursResolutions.WithLabelValues("default")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheRequests.WithLabelValues("miss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("in_use")))
}

func TestNewWithRegistry_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWithRegistry("a", prometheus.NewRegistry())
		NewWithRegistry("a", prometheus.NewRegistry())
	})
}
