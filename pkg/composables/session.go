package composables

import (
	"context"

	"github.com/county-directory/console/pkg/constants"
	"github.com/county-directory/console/pkg/session"
)

// UseSession returns the session of the current request, or nil when the
// visitor is not logged in.
func UseSession(ctx context.Context) *session.Session {
	s, _ := ctx.Value(constants.SessionKey).(*session.Session)
	return s
}

func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, constants.SessionKey, s)
}

func UseLoggedIn(ctx context.Context) bool {
	return UseSession(ctx).LoggedIn()
}
