package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/county-directory/console/components/table"
	"github.com/county-directory/console/modules/report/presentation/templates/pages/report"
	"github.com/county-directory/console/modules/report/services"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/intl"
	"github.com/county-directory/console/pkg/pages"
)

type ReportController struct {
	app           application.Application
	reportService *services.ReportService
}

func NewReportController(app application.Application) application.Controller {
	return &ReportController{
		app:           app,
		reportService: app.Service(services.ReportService{}).(*services.ReportService),
	}
}

func (c *ReportController) Key() string {
	return "/contacts-report"
}

func (c *ReportController) Register(r *mux.Router) {
	router := r.PathPrefix("/contacts-report").Subrouter()
	router.HandleFunc("", c.Index).Methods(http.MethodGet)
	router.HandleFunc("/print", c.Print).Methods(http.MethodGet)
	router.HandleFunc("/export", c.Export).Methods(http.MethodGet)
}

func records(contacts []apiclient.Contact) []table.Record {
	out := make([]table.Record, len(contacts))
	for i, contact := range contacts {
		out[i] = contact.Record()
	}
	return out
}

// withCounty keeps the selected county in the dropdown when the filter
// query excludes it.
func withCounty(names []string, selected string) []string {
	if selected == "" {
		return names
	}
	for _, n := range names {
		if n == selected {
			return names
		}
	}
	return append(names, selected)
}

// countyNames loads the dropdown; a failure becomes the returned message.
func (c *ReportController) countyNames(r *http.Request, q string) ([]string, string) {
	counties, err := c.reportService.Counties(r.Context(), q)
	if err != nil {
		pages.LogAPIError(r.Context(), err, "failed to load counties")
		return nil, intl.MustT(r.Context(), "Report.CountiesFailed")
	}
	names := make([]string, len(counties))
	for i, county := range counties {
		names[i] = county.Name
	}
	return names, ""
}

// Index renders the county picker. With a county parameter it also
// searches; an empty county is rejected without calling the API.
func (c *ReportController) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	props := &report.IndexPageProps{
		Query:    strings.TrimSpace(query.Get("q")),
		Selected: strings.TrimSpace(query.Get("county")),
	}
	searching := query.Has("county") && props.Selected != ""

	var (
		countiesMsg string
		contacts    []apiclient.Contact
		searchErr   error
		g           errgroup.Group
	)
	g.Go(func() error {
		props.Counties, countiesMsg = c.countyNames(r, props.Query)
		return nil
	})
	if searching {
		g.Go(func() error {
			contacts, searchErr = c.reportService.Search(r.Context(), props.Selected)
			return nil
		})
	}
	_ = g.Wait()

	props.Counties = withCounty(props.Counties, props.Selected)
	props.ErrorMessage = countiesMsg
	switch {
	case query.Has("county") && props.Selected == "":
		props.ErrorMessage = intl.MustT(r.Context(), "Report.SelectRequired")
	case searchErr != nil:
		pages.LogAPIError(r.Context(), searchErr, "failed to fetch contacts")
		props.ErrorMessage = pages.FailureMessage(searchErr, intl.MustT(r.Context(), "Report.FetchFailed"))
	case searching:
		props.Searched = true
		props.Records = records(contacts)
		if len(contacts) == 0 {
			props.InfoMessage = intl.MustT(r.Context(), "Report.NoResults", map[string]interface{}{"County": props.Selected})
		}
	}
	pages.Render(w, r, report.Index(props))
}

// renderFailure shows the report page with the contacts that were loaded
// before a print or export failed.
func (c *ReportController) renderFailure(w http.ResponseWriter, r *http.Request, county string, contacts []apiclient.Contact, msg string) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	names, countiesMsg := c.countyNames(r, q)
	if msg == "" {
		msg = countiesMsg
	}
	pages.Render(w, r, report.Index(&report.IndexPageProps{
		Query:        q,
		Counties:     withCounty(names, county),
		Selected:     county,
		Records:      records(contacts),
		Searched:     contacts != nil,
		ErrorMessage: msg,
	}))
}

// printable re-checks that there is something to print. It renders the
// failure itself and returns false when there is not.
func (c *ReportController) printable(w http.ResponseWriter, r *http.Request, county string) ([]apiclient.Contact, bool) {
	contacts, err := c.reportService.PrintableContacts(r.Context(), county)
	switch {
	case errors.Is(err, services.ErrNothingToPrint):
		c.renderFailure(w, r, county, nil, intl.MustT(r.Context(), "Report.NothingToPrint"))
		return nil, false
	case err != nil:
		pages.LogAPIError(r.Context(), err, "failed to fetch contacts")
		c.renderFailure(w, r, county, nil, pages.FailureMessage(err, intl.MustT(r.Context(), "Report.FetchFailed")))
		return nil, false
	}
	return contacts, true
}

// Print streams the county's PDF report inline.
func (c *ReportController) Print(w http.ResponseWriter, r *http.Request) {
	county := strings.TrimSpace(r.URL.Query().Get("county"))
	contacts, ok := c.printable(w, r, county)
	if !ok {
		return
	}
	doc, err := c.reportService.CountyPDF(r.Context(), county)
	if err != nil {
		pages.LogAPIError(r.Context(), err, "failed to fetch county report")
		c.renderFailure(w, r, county, contacts, pages.FailureMessage(err, intl.MustT(r.Context(), "Report.PrintFailed")))
		return
	}
	pages.ServeDocument(w, r, doc)
}

// Export downloads the county's contacts as a spreadsheet.
func (c *ReportController) Export(w http.ResponseWriter, r *http.Request) {
	county := strings.TrimSpace(r.URL.Query().Get("county"))
	contacts, ok := c.printable(w, r, county)
	if !ok {
		return
	}
	locale, ok := intl.UseLocale(r.Context())
	if !ok {
		locale = language.English
	}
	doc, err := c.reportService.Export(r.Context(), locale, county, contacts)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to export contacts")
		c.renderFailure(w, r, county, contacts, intl.MustT(r.Context(), "Report.ExportFailed"))
		return
	}
	pages.ServeAttachment(w, r, doc)
}
