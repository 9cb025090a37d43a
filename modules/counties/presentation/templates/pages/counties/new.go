package counties

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/county-directory/console/components/base"
	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/pkg/composables"
)

type CreatePageProps struct {
	Name           string
	Code           string
	ErrorsMap      map[string]string
	ErrorMessage   string
	SuccessMessage string
	Refresh        *layout.Refresh
}

func New(p *CreatePageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		content := base.Group(
			base.Heading(pageCtx.T("Counties.New.Title")),
			base.Messages(p.ErrorMessage, p.SuccessMessage),
			base.Form("/add-county",
				base.Input(base.InputProps{
					Label: pageCtx.T("Counties.Fields.Name"), Name: "name", Value: p.Name, Error: p.ErrorsMap["Name"],
				}),
				base.Input(base.InputProps{
					Label: pageCtx.T("Counties.Fields.Code"), Name: "code", Type: "number", Value: p.Code, Error: p.ErrorsMap["Code"],
				}),
				base.Button(base.ButtonProps{}, pageCtx.T("Counties.New.Submit")),
			),
		)
		return layout.Base(layout.Props{Title: pageCtx.T("Counties.New.Title"), Refresh: p.Refresh}, content).Render(ctx, w)
	})
}
