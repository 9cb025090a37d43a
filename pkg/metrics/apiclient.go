package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// APICollector counts and times calls to the contacts API. It satisfies
// apiclient.Observer.
type APICollector struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewAPICollector(reg prometheus.Registerer) *APICollector {
	c := &APICollector{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "county_console",
			Subsystem: "api_client",
			Name:      "calls_total",
			Help:      "Contacts API calls by operation and status code; status 0 is a transport failure.",
		}, []string{"op", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "county_console",
			Subsystem: "api_client",
			Name:      "call_duration_seconds",
			Help:      "Latency of contacts API calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
	if reg != nil {
		reg.MustRegister(c.calls, c.duration)
	}
	return c
}

func (c *APICollector) ObserveCall(op string, status int, elapsed time.Duration) {
	c.calls.WithLabelValues(op, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}
