package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fittracker/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()

	r := mux.NewRouter()
	r.HandleFunc("/api/workouts/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.GaugeRequests))
		w.WriteHeader(http.StatusNotFound)
	}).Methods("GET").Name("get-workout")
	r.Use(RequestMetrics(metricsManager))

	for _, id := range []string{"1", "2", "3"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/workouts/"+id, nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.GaugeRequests))

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range families {
		if mf.GetName() != "fittracker_test_server_request_duration_seconds" {
			continue
		}
		found = true
		// one series only, ids are not part of the labels
		require.Len(t, mf.GetMetric(), 1)
		assert.Equal(t, uint64(3), mf.GetMetric()[0].GetHistogram().GetSampleCount())
		for _, lp := range mf.GetMetric()[0].GetLabel() {
			if lp.GetName() == "route" {
				assert.Equal(t, "get-workout", lp.GetValue())
			}
		}
	}
	assert.True(t, found)
}
