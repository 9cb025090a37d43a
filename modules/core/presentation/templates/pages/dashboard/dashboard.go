package dashboard

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/county-directory/console/components/base"
	"github.com/county-directory/console/components/charts"
	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/components/table"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/composables"
)

// IndexPageProps is either loaded (all three datasets set) or failed
// (ErrorMessage set); a failed dashboard renders no charts.
type IndexPageProps struct {
	Gender       *apiclient.GenderStats
	TopCounties  []apiclient.CountyStat
	Recent       []apiclient.Contact
	ErrorMessage string
}

func Index(p *IndexPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		var content templ.Component
		if p.ErrorMessage != "" {
			content = base.Group(
				base.Heading(pageCtx.T("Dashboard.Title")),
				base.Alert(base.AlertError, p.ErrorMessage),
			)
		} else {
			records := make([]table.Record, 0, len(p.Recent))
			for _, c := range p.Recent {
				records = append(records, c.Record())
			}
			content = base.Group(
				base.Heading(pageCtx.T("Dashboard.Title")),
				templ.Raw(`<div class="grid-2">`),
				base.Section(pageCtx.T("Dashboard.GenderChart"), charts.GenderPie(p.Gender)),
				base.Section(pageCtx.T("Dashboard.CountyChart"), charts.CountyBars(p.TopCounties)),
				templ.Raw(`</div>`),
				base.Section(pageCtx.T("Dashboard.RecentContacts"), table.Table(records, nil)),
			)
		}
		return layout.Base(layout.Props{Title: pageCtx.T("Dashboard.Title")}, content).Render(ctx, w)
	})
}
