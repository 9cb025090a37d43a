package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/httpapi"
)

const upstreamProbeTimeout = 2 * time.Second

type HealthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream,omitempty"`
}

type HealthController struct {
	api *apiclient.Client
}

func NewHealthController(app application.Application) application.Controller {
	return &HealthController{api: app.API()}
}

func (c *HealthController) Key() string {
	return "/health"
}

func (c *HealthController) Register(r *mux.Router) {
	r.HandleFunc("/health", c.Get).Methods(http.MethodGet)
}

// Get reports liveness. With ?upstream=1 it also probes the contacts API and
// answers 503 when the API is unreachable.
func (c *HealthController) Get(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}
	status := http.StatusOK
	if r.URL.Query().Get("upstream") != "" {
		ctx, cancel := context.WithTimeout(r.Context(), upstreamProbeTimeout)
		defer cancel()
		if _, err := c.api.Counties(ctx); err != nil && apiclient.IsTransport(err) {
			resp.Status, resp.Upstream = "degraded", "unreachable"
			status = http.StatusServiceUnavailable
		} else {
			resp.Upstream = "reachable"
		}
	}
	_ = httpapi.WriteJSON(w, status, resp)
}
