package account

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/county-directory/console/components/base"
	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/pkg/composables"
)

type PasswordPageProps struct {
	Username       string
	ErrorsMap      map[string]string
	ErrorMessage   string
	SuccessMessage string
	Refresh        *layout.Refresh
}

func Password(p *PasswordPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		content := base.Group(
			base.Heading(pageCtx.T("Account.Title")),
			base.Messages(p.ErrorMessage, p.SuccessMessage),
			base.Form("/account/password",
				base.Input(base.InputProps{
					Label: pageCtx.T("Account.Username"), Name: "username", Value: p.Username, Error: p.ErrorsMap["Username"],
				}),
				base.Input(base.InputProps{
					Label: pageCtx.T("Account.Password"), Name: "password", Type: "password", Error: p.ErrorsMap["Password"],
				}),
				base.Input(base.InputProps{
					Label: pageCtx.T("Account.ConfirmPassword"), Name: "confirmPassword", Type: "password", Error: p.ErrorsMap["ConfirmPassword"],
				}),
				base.Button(base.ButtonProps{}, pageCtx.T("Account.Submit")),
			),
		)
		return layout.Base(layout.Props{Title: pageCtx.T("Account.Title"), Refresh: p.Refresh}, content).Render(ctx, w)
	})
}
