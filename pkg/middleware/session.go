package middleware

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/session"
)

// ProvideSession loads the session named by the cookie and attaches its token
// to the context so API calls made for the request are authenticated. A
// cookie naming an unknown or expired session is cleared.
func ProvideSession(store session.Store, cookieName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			s, err := store.Get(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					session.ClearCookie(w, cookieName)
				} else if logger, logErr := composables.TryUseLogger(r.Context()); logErr == nil {
					logger.WithError(err).Warn("failed to load session")
				}
				next.ServeHTTP(w, r)
				return
			}
			ctx := composables.WithSession(r.Context(), s)
			ctx = apiclient.WithToken(ctx, s.Token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
