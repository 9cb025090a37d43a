package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/modules/core/presentation/controllers/dtos"
	"github.com/county-directory/console/modules/core/presentation/templates/pages/account"
	"github.com/county-directory/console/modules/core/services"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/intl"
	"github.com/county-directory/console/pkg/pages"
)

func NewAccountController(app application.Application) application.Controller {
	return &AccountController{
		app:         app,
		authService: app.Service(services.AuthService{}).(*services.AuthService),
	}
}

type AccountController struct {
	app         application.Application
	authService *services.AuthService
}

func (c *AccountController) Key() string {
	return "/account"
}

func (c *AccountController) Register(r *mux.Router) {
	router := r.PathPrefix("/account").Subrouter()
	router.HandleFunc("/password", c.Get).Methods(http.MethodGet)
	router.HandleFunc("/password", c.Post).Methods(http.MethodPost)
}

func (c *AccountController) Get(w http.ResponseWriter, r *http.Request) {
	props := &account.PasswordPageProps{}
	if s := composables.UseSession(r.Context()); s != nil {
		props.Username = s.Username
	}
	pages.Render(w, r, account.Password(props))
}

func (c *AccountController) Post(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&dtos.ChangePasswordDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errorsMap, ok := dto.Ok(r.Context()); !ok {
		pages.Render(w, r, account.Password(&account.PasswordPageProps{
			Username:     dto.Username,
			ErrorsMap:    errorsMap,
			ErrorMessage: intl.MustT(r.Context(), "Account.Required"),
		}))
		return
	}
	if !dto.Matches() {
		pages.Render(w, r, account.Password(&account.PasswordPageProps{
			Username:     dto.Username,
			ErrorMessage: intl.MustT(r.Context(), "Account.Mismatch"),
		}))
		return
	}

	sess := composables.UseSession(r.Context())
	if _, err := c.authService.ChangePassword(r.Context(), sess, dto.Username, dto.Password); err != nil {
		pages.LogAPIError(r.Context(), err, "password change failed")
		msg := pages.FailureMessage(err, intl.MustT(r.Context(), "Account.Failed"))
		if errors.Is(err, apiclient.ErrConcurrentModification) {
			msg = intl.MustT(r.Context(), "Account.Conflict")
		}
		pages.Render(w, r, account.Password(&account.PasswordPageProps{
			Username:     dto.Username,
			ErrorMessage: msg,
		}))
		return
	}
	pages.Render(w, r, account.Password(&account.PasswordPageProps{
		SuccessMessage: intl.MustT(r.Context(), "Account.Updated"),
		Refresh:        &layout.Refresh{URL: "/", Delay: configuration.Use().RedirectDelay},
	}))
}
