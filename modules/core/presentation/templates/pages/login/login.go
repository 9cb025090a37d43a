package login

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/county-directory/console/components/base"
	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/pkg/composables"
)

type LoginProps struct {
	Username       string
	ErrorsMap      map[string]string
	ErrorMessage   string
	SuccessMessage string
	Refresh        *layout.Refresh
}

func Index(p *LoginProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		content := base.Group(
			base.Heading(pageCtx.T("Login.Title")),
			base.Messages(p.ErrorMessage, p.SuccessMessage),
			base.Form("/login",
				base.Input(base.InputProps{
					Label: pageCtx.T("Login.Username"), Name: "username", Value: p.Username, Error: p.ErrorsMap["Username"],
				}),
				base.Input(base.InputProps{
					Label: pageCtx.T("Login.Password"), Name: "password", Type: "password", Error: p.ErrorsMap["Password"],
				}),
				base.Button(base.ButtonProps{}, pageCtx.T("Login.Submit")),
			),
			templ.Raw(`<p class="text-center text-sm">`),
			templ.Raw(templ.EscapeString(pageCtx.T("Login.ForgotPassword"))+" "),
			templ.Raw(`<span class="text-gray-400 italic">`+templ.EscapeString(pageCtx.T("Login.ResetComingSoon"))+`</span></p>`),
		)
		return layout.Base(layout.Props{Title: pageCtx.T("Login.Title"), Refresh: p.Refresh}, content).Render(ctx, w)
	})
}
