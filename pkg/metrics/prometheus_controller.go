package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/county-directory/console/pkg/application"
)

type PrometheusController struct {
	path     string
	gatherer prometheus.Gatherer
}

// NewPrometheusController serves the metrics of gatherer, the default
// registry when nil, on path.
func NewPrometheusController(path string, gatherer prometheus.Gatherer) application.Controller {
	if path == "" {
		path = "/debug/prometheus"
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &PrometheusController{path: path, gatherer: gatherer}
}

func (c *PrometheusController) Key() string {
	return c.path
}

func (c *PrometheusController) Register(r *mux.Router) {
	r.Handle(c.path, promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}
