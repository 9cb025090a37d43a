package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/modules/core/presentation/controllers/dtos"
	"github.com/county-directory/console/modules/core/presentation/templates/pages/signup"
	"github.com/county-directory/console/modules/core/services"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/intl"
	"github.com/county-directory/console/pkg/pages"
)

func NewSignupController(app application.Application) application.Controller {
	return &SignupController{
		app:         app,
		authService: app.Service(services.AuthService{}).(*services.AuthService),
	}
}

type SignupController struct {
	app         application.Application
	authService *services.AuthService
}

func (c *SignupController) Key() string {
	return "/signup"
}

func (c *SignupController) Register(r *mux.Router) {
	r.HandleFunc("/signup", c.Get).Methods(http.MethodGet)
	r.HandleFunc("/signup", c.Post).Methods(http.MethodPost)
}

func (c *SignupController) Get(w http.ResponseWriter, r *http.Request) {
	pages.Render(w, r, signup.Index(&signup.SignupProps{}))
}

func (c *SignupController) Post(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&dtos.CredentialsDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errorsMap, ok := dto.Ok(r.Context(), "Signup"); !ok {
		pages.Render(w, r, signup.Index(&signup.SignupProps{
			Username:     dto.Username,
			ErrorsMap:    errorsMap,
			ErrorMessage: intl.MustT(r.Context(), "Signup.Required"),
		}))
		return
	}

	user, err := c.authService.SignUp(r.Context(), dto.ToCredentials())
	if err != nil {
		pages.LogAPIError(r.Context(), err, "signup failed")
		pages.Render(w, r, signup.Index(&signup.SignupProps{
			Username:     dto.Username,
			ErrorMessage: pages.FailureMessage(err, intl.MustT(r.Context(), "Signup.Failed")),
		}))
		return
	}
	pages.Render(w, r, signup.Index(&signup.SignupProps{
		SuccessMessage: intl.MustT(r.Context(), "Signup.Created", map[string]interface{}{"Username": user.Username}),
		Refresh:        &layout.Refresh{URL: "/login", Delay: configuration.Use().RedirectDelay},
	}))
}
