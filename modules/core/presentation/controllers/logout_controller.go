package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/modules/core/presentation/templates/pages/logout"
	"github.com/county-directory/console/modules/core/services"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/middleware"
	"github.com/county-directory/console/pkg/pages"
	"github.com/county-directory/console/pkg/session"
)

const logoutRedirectDelay = 1200 * time.Millisecond

func NewLogoutController(app application.Application) application.Controller {
	return &LogoutController{
		app:         app,
		authService: app.Service(services.AuthService{}).(*services.AuthService),
	}
}

type LogoutController struct {
	app         application.Application
	authService *services.AuthService
}

func (c *LogoutController) Key() string {
	return "/logout"
}

func (c *LogoutController) Register(r *mux.Router) {
	r.HandleFunc("/logout", c.Get).Methods(http.MethodGet)
	r.HandleFunc("/logout", c.Post).Methods(http.MethodPost)
}

// Get shows the confirmation; logging out is a POST so prefetching the link
// never ends a session.
func (c *LogoutController) Get(w http.ResponseWriter, r *http.Request) {
	pages.Render(w, r, logout.Index(false, nil))
}

func (c *LogoutController) Post(w http.ResponseWriter, r *http.Request) {
	if err := c.authService.Logout(r.Context(), composables.UseSession(r.Context())); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to delete session")
	}
	session.ClearCookie(w, configuration.Use().Session.SidCookieKey)
	ctx := middleware.WithLoginState(r.Context(), nil)
	pages.Render(w, r.WithContext(ctx), logout.Index(true, &layout.Refresh{URL: "/login", Delay: logoutRedirectDelay}))
}
