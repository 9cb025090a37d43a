package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPICollector_ExposedByController(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewAPICollector(reg)
	collector.ObserveCall("list_counties", 200, 15*time.Millisecond)
	collector.ObserveCall("list_counties", 0, time.Millisecond)

	r := mux.NewRouter()
	controller := NewPrometheusController("", reg)
	assert.Equal(t, "/debug/prometheus", controller.Key())
	controller.Register(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/prometheus", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `county_console_api_client_calls_total{op="list_counties",status="200"} 1`)
	assert.Contains(t, body, `county_console_api_client_calls_total{op="list_counties",status="0"} 1`)
	assert.Contains(t, body, "county_console_api_client_call_duration_seconds_bucket")
}
