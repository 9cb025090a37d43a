package error_pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/county-directory/console/components/base"
	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/pkg/composables"
)

func NotFoundContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		content := base.Group(
			base.Heading(pageCtx.T("ErrorPages.NotFound.Title")),
			base.Paragraph("", pageCtx.T("ErrorPages.NotFound.Text")),
			templ.Raw(`<a class="underline" href="/">`+templ.EscapeString(pageCtx.T("ErrorPages.NotFound.Home"))+`</a>`),
		)
		return layout.Base(layout.Props{Title: pageCtx.T("ErrorPages.NotFound.Title")}, content).Render(ctx, w)
	})
}
