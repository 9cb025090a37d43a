package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/intl"
	"github.com/county-directory/console/pkg/types"
)

// WithPageContext must run after ProvideLocalizer and ProvideSession.
func WithPageContext() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			localizer, found := intl.UseLocalizer(r.Context())
			if !found {
				panic(intl.ErrNoLocalizer)
			}
			locale, ok := intl.UseLocale(r.Context())
			if !ok {
				panic("locale not found")
			}
			pageCtx := &types.PageContext{
				URL:       r.URL,
				Localizer: localizer,
				Locale:    locale,
				Session:   composables.UseLoggedIn(r.Context()),
			}
			next.ServeHTTP(w, r.WithContext(composables.WithPageCtx(r.Context(), pageCtx)))
		})
	}
}
