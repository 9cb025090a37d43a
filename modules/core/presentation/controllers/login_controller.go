package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/modules/core/presentation/controllers/dtos"
	"github.com/county-directory/console/modules/core/presentation/templates/pages/login"
	"github.com/county-directory/console/modules/core/services"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/intl"
	"github.com/county-directory/console/pkg/middleware"
	"github.com/county-directory/console/pkg/pages"
	"github.com/county-directory/console/pkg/session"
)

const loginRedirectDelay = 1500 * time.Millisecond

func NewLoginController(app application.Application) application.Controller {
	return &LoginController{
		app:         app,
		authService: app.Service(services.AuthService{}).(*services.AuthService),
	}
}

type LoginController struct {
	app         application.Application
	authService *services.AuthService
}

func (c *LoginController) Key() string {
	return "/login"
}

func (c *LoginController) Register(r *mux.Router) {
	r.HandleFunc("/login", c.Get).Methods(http.MethodGet)

	setRouter := r.PathPrefix("/login").Subrouter()
	setRouter.Use(
		middleware.IPRateLimitPeriod(10, time.Minute), // 10 login attempts per minute per IP
	)
	setRouter.HandleFunc("", c.Post).Methods(http.MethodPost)
}

func (c *LoginController) Get(w http.ResponseWriter, r *http.Request) {
	pages.Render(w, r, login.Index(&login.LoginProps{}))
}

func (c *LoginController) Post(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&dtos.CredentialsDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errorsMap, ok := dto.Ok(r.Context(), "Login"); !ok {
		pages.Render(w, r, login.Index(&login.LoginProps{
			Username:     dto.Username,
			ErrorsMap:    errorsMap,
			ErrorMessage: intl.MustT(r.Context(), "Login.Required"),
		}))
		return
	}

	sess, err := c.authService.Login(r.Context(), dto.ToCredentials())
	if err != nil {
		pages.LogAPIError(r.Context(), err, "login failed")
		pages.Render(w, r, login.Index(&login.LoginProps{
			Username:     dto.Username,
			ErrorMessage: pages.FailureMessage(err, intl.MustT(r.Context(), "Login.Failed")),
		}))
		return
	}

	conf := configuration.Use()
	session.SetCookie(w, conf.Session.SidCookieKey, sess, conf.GoAppEnvironment == configuration.Production)
	ctx := middleware.WithLoginState(r.Context(), sess)
	pages.Render(w, r.WithContext(ctx), login.Index(&login.LoginProps{
		SuccessMessage: intl.MustT(ctx, "Login.Welcome", map[string]interface{}{"Username": sess.Username}),
		Refresh:        &layout.Refresh{URL: "/", Delay: loginRedirectDelay},
	}))
}
