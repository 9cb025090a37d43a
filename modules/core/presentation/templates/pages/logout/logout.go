package logout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/county-directory/console/components/base"
	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/pkg/composables"
)

// Index asks for confirmation; once LoggedOut it shows the farewell and
// refreshes to the login page.
func Index(loggedOut bool, refresh *layout.Refresh) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		var body templ.Component
		if loggedOut {
			body = base.Paragraph("logout-done text-center", pageCtx.T("Logout.Done"))
		} else {
			body = base.Form("/logout",
				base.Paragraph("text-center", pageCtx.T("Logout.Confirm")),
				base.Button(base.ButtonProps{Variant: base.ButtonDanger}, pageCtx.T("Logout.Submit")),
			)
		}
		content := base.Group(base.Heading(pageCtx.T("Logout.Title")), body)
		return layout.Base(layout.Props{Title: pageCtx.T("Logout.Title"), Refresh: refresh}, content).Render(ctx, w)
	})
}
