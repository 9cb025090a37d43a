package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/constants"
	"github.com/county-directory/console/pkg/intl"
	"github.com/county-directory/console/pkg/session"
	"github.com/county-directory/console/pkg/types"
)

// VisibleNavItems keeps the items shown for the given login state. Parents
// whose children are all hidden are dropped; a parent left with one child is
// replaced by it.
func VisibleNavItems(items []types.NavigationItem, loggedIn bool) []types.NavigationItem {
	out := make([]types.NavigationItem, 0, len(items))
	for _, item := range items {
		if !item.VisibleTo(loggedIn) {
			continue
		}
		if len(item.Children) == 0 {
			out = append(out, item)
			continue
		}
		children := VisibleNavItems(item.Children, loggedIn)
		switch len(children) {
		case 0:
		case 1:
			out = append(out, children[0])
		default:
			item.Children = children
			out = append(out, item)
		}
	}
	return out
}

// NavItems resolves the navigation for the session's login state. Visibility
// is a display hint; routes stay reachable either way.
func NavItems() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			app, err := application.UseApp(r.Context())
			if err != nil {
				panic(err.Error())
			}
			localizer, ok := intl.UseLocalizer(r.Context())
			if !ok {
				panic(intl.ErrNoLocalizer)
			}
			all := app.NavItems(localizer)
			visible := VisibleNavItems(all, composables.UseLoggedIn(r.Context()))

			ctx := context.WithValue(r.Context(), constants.AllNavItemsKey, all)
			ctx = context.WithValue(ctx, constants.NavItemsKey, visible)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithLoginState returns ctx as it would look on a request carrying s, so a
// page rendered right after login or logout shows the matching navigation.
func WithLoginState(ctx context.Context, s *session.Session) context.Context {
	ctx = composables.WithSession(ctx, s)
	if all, ok := ctx.Value(constants.AllNavItemsKey).([]types.NavigationItem); ok {
		ctx = context.WithValue(ctx, constants.NavItemsKey, VisibleNavItems(all, s.LoggedIn()))
	}
	if pageCtx, ok := composables.TryUsePageCtx(ctx); ok {
		if p, ok := pageCtx.(*types.PageContext); ok {
			next := *p
			next.Session = s.LoggedIn()
			ctx = composables.WithPageCtx(ctx, &next)
		}
	}
	return ctx
}
