package signup

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/county-directory/console/components/base"
	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/pkg/composables"
)

type SignupProps struct {
	Username       string
	ErrorsMap      map[string]string
	ErrorMessage   string
	SuccessMessage string
	Refresh        *layout.Refresh
}

func Index(p *SignupProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		content := base.Group(
			base.Heading(pageCtx.T("Signup.Title")),
			base.Messages(p.ErrorMessage, p.SuccessMessage),
			base.Form("/signup",
				base.Input(base.InputProps{
					Label: pageCtx.T("Signup.Username"), Name: "username", Value: p.Username, Error: p.ErrorsMap["Username"],
				}),
				base.Input(base.InputProps{
					Label: pageCtx.T("Signup.Password"), Name: "password", Type: "password", Error: p.ErrorsMap["Password"],
				}),
				base.Button(base.ButtonProps{}, pageCtx.T("Signup.Submit")),
			),
			templ.Raw(`<p class="text-center">`+templ.EscapeString(pageCtx.T("Signup.HaveAccount"))+
				` <a href="/login">`+templ.EscapeString(pageCtx.T("Signup.LoginHere"))+`</a>.</p>`),
		)
		return layout.Base(layout.Props{Title: pageCtx.T("Signup.Title"), Refresh: p.Refresh}, content).Render(ctx, w)
	})
}
