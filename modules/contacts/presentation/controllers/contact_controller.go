package controllers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/modules/contacts/presentation/controllers/dtos"
	"github.com/county-directory/console/modules/contacts/presentation/mappers"
	"github.com/county-directory/console/modules/contacts/presentation/templates/pages/contacts"
	"github.com/county-directory/console/modules/contacts/presentation/viewmodels"
	"github.com/county-directory/console/modules/contacts/services"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/intl"
	"github.com/county-directory/console/pkg/pages"
)

type ContactsController struct {
	app            application.Application
	contactService *services.ContactService
}

func NewContactsController(app application.Application) application.Controller {
	return &ContactsController{
		app:            app,
		contactService: app.Service(services.ContactService{}).(*services.ContactService),
	}
}

func (c *ContactsController) Key() string {
	return "/contacts"
}

func (c *ContactsController) Register(r *mux.Router) {
	r.HandleFunc("/add-contact", c.GetNew).Methods(http.MethodGet)
	r.HandleFunc("/add-contact", c.Create).Methods(http.MethodPost)

	router := r.PathPrefix("/contacts").Subrouter()
	router.HandleFunc("/{id:[0-9]+}", c.GetEdit).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.Update).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}/pdf", c.Report).Methods(http.MethodGet)
}

// loadCounties returns the county options, or the page message to show
// when they could not be loaded.
func (c *ContactsController) loadCounties(ctx context.Context) ([]viewmodels.County, string) {
	counties, err := c.contactService.Counties(ctx)
	if err != nil {
		pages.LogAPIError(ctx, err, "failed to load counties")
		return nil, intl.MustT(ctx, "Contacts.CountiesFailed")
	}
	return mappers.CountiesToViewModels(counties), ""
}

// keepSelected makes sure a submitted county stays selectable when the
// county list was not reloaded.
func keepSelected(counties []viewmodels.County, selected string) []viewmodels.County {
	if selected == "" {
		return counties
	}
	for _, c := range counties {
		if c.Name == selected {
			return counties
		}
	}
	return append(counties, viewmodels.County{Name: selected})
}

func contactID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

func (c *ContactsController) GetNew(w http.ResponseWriter, r *http.Request) {
	counties, msg := c.loadCounties(r.Context())
	pages.Render(w, r, contacts.New(&contacts.FormProps{
		Counties:     counties,
		ErrorMessage: msg,
	}))
}

func (c *ContactsController) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&dtos.ContactDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errorsMap, ok := dto.Normalize().Ok(r.Context()); !ok {
		pages.Render(w, r, contacts.New(&contacts.FormProps{
			Form:         mappers.ContactFormFromDTO(0, dto),
			Counties:     keepSelected(mappers.CountiesFromNames(dto.CountyOptions), dto.County),
			ErrorsMap:    errorsMap,
			ErrorMessage: intl.MustT(r.Context(), "Contacts.Required"),
		}))
		return
	}

	if _, err := c.contactService.Create(r.Context(), dto.ToInput()); err != nil {
		pages.LogAPIError(r.Context(), err, "failed to create contact")
		counties, _ := c.loadCounties(r.Context())
		pages.Render(w, r, contacts.New(&contacts.FormProps{
			Form:         mappers.ContactFormFromDTO(0, dto),
			Counties:     keepSelected(counties, dto.County),
			ErrorMessage: pages.FailureMessage(err, intl.MustT(r.Context(), "Contacts.CreateFailed")),
		}))
		return
	}

	counties, _ := c.loadCounties(r.Context())
	pages.Render(w, r, contacts.New(&contacts.FormProps{
		Counties:       counties,
		SuccessMessage: intl.MustT(r.Context(), "Contacts.Created"),
		Refresh:        &layout.Refresh{URL: "/", Delay: configuration.Use().RedirectDelay},
	}))
}

// renderEdit loads the contact and the county list concurrently. A failed
// contact load hides the form; a failed county load only adds a message.
func (c *ContactsController) renderEdit(w http.ResponseWriter, r *http.Request, id int64, props *contacts.FormProps) {
	var (
		contact     *apiclient.Contact
		contactErr  error
		counties    []viewmodels.County
		countiesMsg string
		g           errgroup.Group
	)
	g.Go(func() error {
		contact, contactErr = c.contactService.GetByID(r.Context(), id)
		return nil
	})
	g.Go(func() error {
		counties, countiesMsg = c.loadCounties(r.Context())
		return nil
	})
	_ = g.Wait()

	if contactErr != nil {
		pages.LogAPIError(r.Context(), contactErr, "failed to load contact")
		if props.ErrorMessage == "" {
			props.ErrorMessage = pages.FailureMessage(contactErr, intl.MustT(r.Context(), "Contacts.LoadFailed"))
		}
		props.Form = nil
		pages.Render(w, r, contacts.Edit(props))
		return
	}
	if props.Form == nil {
		props.Form = mappers.ContactToForm(contact)
	}
	props.Counties = keepSelected(counties, props.Form.County)
	if props.ErrorMessage == "" {
		props.ErrorMessage = countiesMsg
	}
	pages.Render(w, r, contacts.Edit(props))
}

func (c *ContactsController) GetEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	c.renderEdit(w, r, id, &contacts.FormProps{})
}

func (c *ContactsController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	dto, err := composables.UseForm(&dtos.ContactDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errorsMap, ok := dto.Normalize().Ok(r.Context()); !ok {
		pages.Render(w, r, contacts.Edit(&contacts.FormProps{
			Form:         mappers.ContactFormFromDTO(id, dto),
			Counties:     keepSelected(mappers.CountiesFromNames(dto.CountyOptions), dto.County),
			ErrorsMap:    errorsMap,
			ErrorMessage: intl.MustT(r.Context(), "Contacts.Required"),
		}))
		return
	}

	updated, err := c.contactService.Update(r.Context(), id, dto.ToInput())
	if err != nil {
		pages.LogAPIError(r.Context(), err, "failed to update contact")
		counties, _ := c.loadCounties(r.Context())
		pages.Render(w, r, contacts.Edit(&contacts.FormProps{
			Form:         mappers.ContactFormFromDTO(id, dto),
			Counties:     keepSelected(counties, dto.County),
			ErrorMessage: pages.FailureMessage(err, intl.MustT(r.Context(), "Contacts.UpdateFailed")),
		}))
		return
	}

	county := updated.CountyName
	if county == "" {
		county = dto.County
	}
	form := mappers.ContactFormFromDTO(id, dto)
	pages.Render(w, r, contacts.Edit(&contacts.FormProps{
		Form:           form,
		Counties:       keepSelected(mappers.CountiesFromNames(dto.CountyOptions), form.County),
		SuccessMessage: intl.MustT(r.Context(), "Contacts.Updated"),
		Refresh: &layout.Refresh{
			URL:   "/contacts-report?county=" + url.QueryEscape(county),
			Delay: configuration.Use().RedirectDelay,
		},
	}))
}

// Report streams the contact's PDF. On failure the edit page is shown with
// the error.
func (c *ContactsController) Report(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	doc, err := c.contactService.Report(r.Context(), id)
	if err != nil {
		pages.LogAPIError(r.Context(), err, "failed to fetch contact report")
		c.renderEdit(w, r, id, &contacts.FormProps{
			ErrorMessage: pages.FailureMessage(err, intl.MustT(r.Context(), "Contacts.ReportFailed")),
		})
		return
	}
	pages.ServeDocument(w, r, doc)
}
