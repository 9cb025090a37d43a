package contacts

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/county-directory/console/components/base"
	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/modules/contacts/presentation/viewmodels"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/types"
)

type FormProps struct {
	Form           *viewmodels.ContactForm
	Counties       []viewmodels.County
	ErrorsMap      map[string]string
	ErrorMessage   string
	SuccessMessage string
	Refresh        *layout.Refresh
}

func (p *FormProps) values() *viewmodels.ContactForm {
	if p.Form == nil {
		return &viewmodels.ContactForm{}
	}
	return p.Form
}

func genderOptions(pageCtx types.PageContextProvider) []base.Option {
	return []base.Option{
		{Value: string(apiclient.GenderMale), Label: pageCtx.T("Contacts.Genders.Male")},
		{Value: string(apiclient.GenderFemale), Label: pageCtx.T("Contacts.Genders.Female")},
		{Value: string(apiclient.GenderNotSpecified), Label: pageCtx.T("Contacts.Genders.NotSpecified")},
	}
}

func countyOptions(counties []viewmodels.County) []base.Option {
	opts := make([]base.Option, len(counties))
	for i, c := range counties {
		opts[i] = base.Option{Value: c.Name, Label: c.Name}
	}
	return opts
}

// postedCounties carries the rendered county names back with the form.
func postedCounties(counties []viewmodels.County) templ.Component {
	hidden := make([]templ.Component, len(counties))
	for i, c := range counties {
		hidden[i] = base.Hidden("countyOptions", c.Name)
	}
	return base.Group(hidden...)
}

func fields(pageCtx types.PageContextProvider, p *FormProps) []templ.Component {
	v := p.values()
	return []templ.Component{
		postedCounties(p.Counties),
		base.Input(base.InputProps{
			Label: pageCtx.T("Contacts.Fields.Name"), Name: "name", Value: v.Name, Error: p.ErrorsMap["Name"],
		}),
		base.Input(base.InputProps{
			Label: pageCtx.T("Contacts.Fields.Email"), Name: "email", Type: "email", Value: v.Email, Error: p.ErrorsMap["Email"],
		}),
		base.Input(base.InputProps{
			Label: pageCtx.T("Contacts.Fields.Phone"), Name: "phone", Type: "tel", Value: v.Phone, Error: p.ErrorsMap["Phone"],
		}),
		base.Select(base.SelectProps{
			Label:       pageCtx.T("Contacts.Fields.Gender"),
			Name:        "gender",
			Placeholder: pageCtx.T("Contacts.SelectGender"),
			Options:     genderOptions(pageCtx),
			Selected:    v.Gender,
			Error:       p.ErrorsMap["Gender"],
		}),
		base.Input(base.InputProps{
			Label: pageCtx.T("Contacts.Fields.DateOfBirth"), Name: "dateOfBirth", Type: "date", Value: v.DateOfBirth, Error: p.ErrorsMap["DateOfBirth"],
		}),
		base.Select(base.SelectProps{
			Label:       pageCtx.T("Contacts.Fields.County"),
			Name:        "county",
			Placeholder: pageCtx.T("Contacts.SelectCounty"),
			Options:     countyOptions(p.Counties),
			Selected:    v.County,
			Error:       p.ErrorsMap["County"],
		}),
	}
}

// New renders the add-contact form.
func New(p *FormProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		children := append(fields(pageCtx, p), base.Button(base.ButtonProps{}, pageCtx.T("Contacts.New.Submit")))
		content := base.Group(
			base.Heading(pageCtx.T("Contacts.New.Title")),
			base.Messages(p.ErrorMessage, p.SuccessMessage),
			base.Form("/add-contact", children...),
		)
		return layout.Base(layout.Props{Title: pageCtx.T("Contacts.New.Title"), Refresh: p.Refresh}, content).Render(ctx, w)
	})
}

// Edit renders an existing contact with a link to its PDF report. Without an
// ID, e.g. when the contact failed to load, only the messages are shown.
func Edit(p *FormProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		v := p.values()
		children := []templ.Component{
			base.Heading(pageCtx.T("Contacts.Edit.Title")),
			base.Messages(p.ErrorMessage, p.SuccessMessage),
		}
		if v.ID != "" {
			action := "/contacts/" + v.ID
			formChildren := append(fields(pageCtx, p),
				base.Button(base.ButtonProps{}, pageCtx.T("Contacts.Edit.Submit")),
				base.LinkButton(base.ButtonProps{Variant: base.ButtonSecondary}, action+"/pdf", pageCtx.T("Contacts.Edit.DownloadPDF")),
			)
			children = append(children, base.Form(action, formChildren...))
		}
		return layout.Base(layout.Props{Title: pageCtx.T("Contacts.Edit.Title"), Refresh: p.Refresh}, base.Group(children...)).Render(ctx, w)
	})
}
