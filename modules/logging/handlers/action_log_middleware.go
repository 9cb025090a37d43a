package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/county-directory/console/modules/logging/domain/entities/actionlog"
	"github.com/county-directory/console/modules/logging/services"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/configuration"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func mutating(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}

// ActionLogMiddleware records mutating requests into the action log when
// enabled. It must run inside the session middleware so the operator is
// known. Failures are logged and never block the request.
func ActionLogMiddleware(app application.Application) mux.MiddlewareFunc {
	conf := configuration.Use()
	if !conf.ActionLogEnabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return actionLog(app.Service(services.LogsService{}).(*services.LogsService))
}

func actionLog(logs actionLogWriter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !mutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			if rec.status == 0 {
				rec.status = http.StatusOK
			}

			ctx := r.Context()
			entry := &actionlog.ActionLog{
				Method: strings.ToUpper(r.Method),
				Path:   r.URL.Path,
				Status: rec.status,
			}
			if s := composables.UseSession(ctx); s != nil {
				entry.Username = s.Username
			}
			entry.IP, _ = composables.UseIP(ctx)
			entry.UserAgent, _ = composables.UseUserAgent(ctx)

			if err := logs.RecordAction(ctx, entry); err != nil {
				if logger, lerr := composables.TryUseLogger(ctx); lerr == nil {
					logger.WithError(err).Warn("action-log: failed to persist request")
				}
			}
		})
	}
}
