package controllers

import (
	"net/http"

	"github.com/county-directory/console/modules/core/presentation/templates/pages/error_pages"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/httpapi"
	"github.com/county-directory/console/pkg/intl"
	"github.com/county-directory/console/pkg/pages"
	"github.com/county-directory/console/pkg/routing"
)

type ErrorHandlersOptions struct {
	Entrypoint    string
	AllowlistPath string
}

func classifier(opts []ErrorHandlersOptions) *routing.Classifier {
	var resolved ErrorHandlersOptions
	if len(opts) > 0 {
		resolved = opts[0]
	}
	rules, err := routing.LoadAllowlist(resolved.AllowlistPath, resolved.Entrypoint)
	if err != nil {
		rules = routing.DefaultRules()
	}
	return routing.NewClassifier(rules)
}

// NotFound answers unmatched routes: a JSON envelope on ops routes, the
// localized 404 page elsewhere. It expects the global middleware stack.
func NotFound(opts ...ErrorHandlersOptions) http.HandlerFunc {
	routes := classifier(opts)
	return func(w http.ResponseWriter, r *http.Request) {
		if routes.ClassifyPath(r.URL.Path).JSON() {
			_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "not found",
				httpapi.RequestMeta(r, composables.UseRequestID(r.Context())))
			return
		}
		pages.RenderStatus(w, r, http.StatusNotFound, error_pages.NotFoundContent())
	}
}

func MethodNotAllowed(opts ...ErrorHandlersOptions) http.HandlerFunc {
	routes := classifier(opts)
	return func(w http.ResponseWriter, r *http.Request) {
		if routes.ClassifyPath(r.URL.Path).JSON() {
			meta := httpapi.RequestMeta(r, composables.UseRequestID(r.Context()))
			meta["method"] = r.Method
			_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", meta)
			return
		}
		msg := "Method not allowed"
		if _, ok := intl.UseLocalizer(r.Context()); ok {
			msg = intl.MustT(r.Context(), "ErrorPages.MethodNotAllowed")
		}
		http.Error(w, msg, http.StatusMethodNotAllowed)
	}
}
