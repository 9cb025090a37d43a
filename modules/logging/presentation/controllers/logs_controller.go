package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/county-directory/console/modules/logging/domain/entities/actionlog"
	"github.com/county-directory/console/modules/logging/domain/entities/authenticationlog"
	"github.com/county-directory/console/modules/logging/presentation/mappers"
	"github.com/county-directory/console/modules/logging/presentation/viewmodels"
	"github.com/county-directory/console/modules/logging/services"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/httpapi"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// LogsController serves the audit journals as JSON on an ops route.
type LogsController struct {
	logsService *services.LogsService
	basePath    string
}

func NewLogsController(app application.Application) application.Controller {
	return &LogsController{
		logsService: app.Service(services.LogsService{}).(*services.LogsService),
		basePath:    "/debug/audit",
	}
}

func (c *LogsController) Key() string {
	return c.basePath
}

func (c *LogsController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath, c.List).Methods(http.MethodGet)
}

type badFilter struct {
	field string
	value string
}

func (e *badFilter) Error() string {
	return fmt.Sprintf("invalid %s %q", e.field, e.value)
}

func (c *LogsController) List(w http.ResponseWriter, r *http.Request) {
	tab := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("tab")))
	if tab != "action" {
		tab = "authentication"
	}

	limit, offset, err := pagination(r)
	if err != nil {
		c.badRequest(w, r, err)
		return
	}

	resp := &viewmodels.LogsResponse{Tab: tab}
	switch tab {
	case "action":
		params, filters, err := buildActionFilters(r, limit, offset)
		if err != nil {
			c.badRequest(w, r, err)
			return
		}
		page, err := c.logsService.Actions(r.Context(), params)
		if err != nil {
			c.internal(w, r, err)
			return
		}
		resp.Action = &viewmodels.ActionSection{
			Logs:    mappers.MapViewModels(page.Entries, mappers.ActionLogToViewModel),
			Total:   page.Total,
			Filters: filters,
			Limit:   limit,
			Offset:  offset,
		}
	default:
		params, filters, err := buildAuthenticationFilters(r, limit, offset)
		if err != nil {
			c.badRequest(w, r, err)
			return
		}
		page, err := c.logsService.Authentications(r.Context(), params)
		if err != nil {
			c.internal(w, r, err)
			return
		}
		resp.Authentication = &viewmodels.AuthenticationSection{
			Logs:    mappers.MapViewModels(page.Entries, mappers.AuthenticationLogToViewModel),
			Total:   page.Total,
			Filters: filters,
			Limit:   limit,
			Offset:  offset,
		}
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, resp)
}

func (c *LogsController) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error(),
		httpapi.RequestMeta(r, composables.UseRequestID(r.Context())))
}

func (c *LogsController) internal(w http.ResponseWriter, r *http.Request, err error) {
	if logger, lerr := composables.TryUseLogger(r.Context()); lerr == nil {
		logger.WithError(err).Error("audit: failed to list logs")
	}
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list logs",
		httpapi.RequestMeta(r, composables.UseRequestID(r.Context())))
}

func pagination(r *http.Request) (int, int, error) {
	q := r.URL.Query()
	limit, offset := defaultLimit, 0
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, 0, &badFilter{field: "limit", value: v}
		}
		limit = min(n, maxLimit)
	}
	if v := strings.TrimSpace(q.Get("offset")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, &badFilter{field: "offset", value: v}
		}
		offset = n
	}
	return limit, offset, nil
}

// dateRange parses from and to as dates; to is inclusive, so the bound is
// the start of the following day.
func dateRange(from, to string) (*time.Time, *time.Time, error) {
	var f, t *time.Time
	if from != "" {
		parsed, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return nil, nil, &badFilter{field: "from", value: from}
		}
		f = &parsed
	}
	if to != "" {
		parsed, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return nil, nil, &badFilter{field: "to", value: to}
		}
		end := parsed.AddDate(0, 0, 1)
		t = &end
	}
	return f, t, nil
}

func buildAuthenticationFilters(
	r *http.Request,
	limit int,
	offset int,
) (*authenticationlog.FindParams, viewmodels.AuthenticationFilters, error) {
	q := r.URL.Query()
	filters := viewmodels.AuthenticationFilters{
		Username: strings.TrimSpace(q.Get("username")),
		Kind:     strings.TrimSpace(q.Get("kind")),
		IP:       strings.TrimSpace(q.Get("ip")),
		From:     strings.TrimSpace(q.Get("from")),
		To:       strings.TrimSpace(q.Get("to")),
	}

	params := &authenticationlog.FindParams{
		Username: filters.Username,
		Kind:     authenticationlog.Kind(filters.Kind),
		IP:       filters.IP,
		Limit:    limit,
		Offset:   offset,
	}
	from, to, err := dateRange(filters.From, filters.To)
	if err != nil {
		return nil, filters, err
	}
	params.From, params.To = from, to
	return params, filters, nil
}

func buildActionFilters(
	r *http.Request,
	limit int,
	offset int,
) (*actionlog.FindParams, viewmodels.ActionFilters, error) {
	q := r.URL.Query()
	filters := viewmodels.ActionFilters{
		Username: strings.TrimSpace(q.Get("username")),
		Method:   strings.TrimSpace(q.Get("method")),
		Path:     strings.TrimSpace(q.Get("path")),
		Event:    strings.TrimSpace(q.Get("event")),
		IP:       strings.TrimSpace(q.Get("ip")),
		From:     strings.TrimSpace(q.Get("from")),
		To:       strings.TrimSpace(q.Get("to")),
	}

	params := &actionlog.FindParams{
		Username: filters.Username,
		Method:   filters.Method,
		Path:     filters.Path,
		Event:    filters.Event,
		IP:       filters.IP,
		Limit:    limit,
		Offset:   offset,
	}
	from, to, err := dateRange(filters.From, filters.To)
	if err != nil {
		return nil, filters, err
	}
	params.From, params.To = from, to
	return params, filters, nil
}
