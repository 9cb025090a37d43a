package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/county-directory/console/modules/core/presentation/templates/pages/dashboard"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/intl"
	"github.com/county-directory/console/pkg/pages"
)

type DashboardController struct {
	app application.Application
	api *apiclient.Client
}

func NewDashboardController(app application.Application) application.Controller {
	return &DashboardController{
		app: app,
		api: app.API(),
	}
}

func (c *DashboardController) Key() string {
	return "/"
}

func (c *DashboardController) Register(r *mux.Router) {
	r.HandleFunc("/", c.Get).Methods(http.MethodGet)
}

// Get loads the three dashboard datasets concurrently. The first failure
// cancels the remaining calls and the page shows a single error.
func (c *DashboardController) Get(w http.ResponseWriter, r *http.Request) {
	props := &dashboard.IndexPageProps{}
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		stats, err := c.api.GenderStats(ctx)
		props.Gender = stats
		return err
	})
	g.Go(func() error {
		counties, err := c.api.TopCounties(ctx)
		props.TopCounties = counties
		return err
	})
	g.Go(func() error {
		recent, err := c.api.RecentContacts(ctx)
		props.Recent = recent
		return err
	})
	if err := g.Wait(); err != nil {
		pages.LogAPIError(r.Context(), err, "failed to load dashboard")
		props = &dashboard.IndexPageProps{
			ErrorMessage: intl.MustT(r.Context(), "Dashboard.LoadFailed"),
		}
	}
	pages.Render(w, r, dashboard.Index(props))
}
