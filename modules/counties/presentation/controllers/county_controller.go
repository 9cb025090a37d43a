package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/modules/counties/presentation/controllers/dtos"
	"github.com/county-directory/console/modules/counties/presentation/templates/pages/counties"
	"github.com/county-directory/console/modules/counties/services"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/intl"
	"github.com/county-directory/console/pkg/pages"
)

type CountiesController struct {
	app           application.Application
	countyService *services.CountyService
}

func NewCountiesController(app application.Application) application.Controller {
	return &CountiesController{
		app:           app,
		countyService: app.Service(services.CountyService{}).(*services.CountyService),
	}
}

func (c *CountiesController) Key() string {
	return "/add-county"
}

func (c *CountiesController) Register(r *mux.Router) {
	r.HandleFunc("/add-county", c.GetNew).Methods(http.MethodGet)
	r.HandleFunc("/add-county", c.Create).Methods(http.MethodPost)
}

func (c *CountiesController) GetNew(w http.ResponseWriter, r *http.Request) {
	pages.Render(w, r, counties.New(&counties.CreatePageProps{}))
}

func (c *CountiesController) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&dtos.CountyDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dto.Normalize()
	if errorsMap, ok := dto.Ok(r.Context()); !ok {
		pages.Render(w, r, counties.New(&counties.CreatePageProps{
			Name:         dto.Name,
			Code:         dto.Code,
			ErrorsMap:    errorsMap,
			ErrorMessage: intl.MustT(r.Context(), "Counties.Required"),
		}))
		return
	}
	input, ok := dto.ToInput()
	if !ok {
		msg := intl.MustT(r.Context(), "Counties.InvalidCode")
		pages.Render(w, r, counties.New(&counties.CreatePageProps{
			Name:         dto.Name,
			Code:         dto.Code,
			ErrorsMap:    map[string]string{"Code": msg},
			ErrorMessage: msg,
		}))
		return
	}

	if _, err := c.countyService.Create(r.Context(), input); err != nil {
		pages.LogAPIError(r.Context(), err, "failed to create county")
		pages.Render(w, r, counties.New(&counties.CreatePageProps{
			Name:         dto.Name,
			Code:         dto.Code,
			ErrorMessage: pages.FailureMessage(err, intl.MustT(r.Context(), "Counties.CreateFailed")),
		}))
		return
	}
	pages.Render(w, r, counties.New(&counties.CreatePageProps{
		SuccessMessage: intl.MustT(r.Context(), "Counties.Created", map[string]interface{}{
			"Name": dto.Name,
			"Code": dto.Code,
		}),
		Refresh: &layout.Refresh{URL: "/", Delay: configuration.Use().RedirectDelay},
	}))
}
