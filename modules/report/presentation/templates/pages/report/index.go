package report

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/county-directory/console/components/base"
	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/components/table"
	"github.com/county-directory/console/pkg/composables"
)

type IndexPageProps struct {
	// Query narrows the county dropdown.
	Query    string
	Counties []string
	Selected string
	Records  []table.Record
	// Searched is set once contacts were fetched for Selected.
	Searched     bool
	ErrorMessage string
	InfoMessage  string
}

// CanPrint reports whether there are loaded results to print or export.
func (p *IndexPageProps) CanPrint() bool {
	return p.Selected != "" && p.Searched && len(p.Records) > 0
}

func actionURL(path, county string) string {
	return path + "?" + url.Values{"county": {county}}.Encode()
}

func columns() []table.Column {
	cols := table.DefaultColumns()
	cols[0].Href = func(r table.Record) string {
		if id, ok := r["id"].(int64); ok && id > 0 {
			return "/contacts/" + strconv.FormatInt(id, 10)
		}
		return ""
	}
	return cols
}

func Index(p *IndexPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)

		options := make([]base.Option, len(p.Counties))
		for i, name := range p.Counties {
			options[i] = base.Option{Value: name, Label: name}
		}

		children := []templ.Component{
			base.Heading(pageCtx.T("Report.Title")),
			base.SearchForm("/contacts-report",
				base.Input(base.InputProps{
					Label:       pageCtx.T("Report.Filter"),
					Name:        "q",
					Type:        "search",
					Value:       p.Query,
					Placeholder: pageCtx.T("Report.FilterPlaceholder"),
				}),
				base.Button(base.ButtonProps{Variant: base.ButtonSecondary, Icon: icons.MagnifyingGlass(icons.Props{Size: "16"})}, pageCtx.T("Report.FilterSubmit")),
			),
			base.SearchForm("/contacts-report",
				base.Hidden("q", p.Query),
				base.Select(base.SelectProps{
					Label:       pageCtx.T("Report.County"),
					Name:        "county",
					Placeholder: pageCtx.T("Report.SelectCounty"),
					Options:     options,
					Selected:    p.Selected,
				}),
				base.Button(base.ButtonProps{}, pageCtx.T("Report.Search")),
			),
			base.Alert(base.AlertError, p.ErrorMessage),
			base.Alert(base.AlertInfo, p.InfoMessage),
		}
		if len(p.Records) > 0 {
			children = append(children,
				base.Section(pageCtx.T("Report.Results", map[string]interface{}{"County": p.Selected}),
					table.Table(p.Records, columns()),
				),
			)
		}
		disabled := !p.CanPrint()
		children = append(children, base.Group(
			base.LinkButton(base.ButtonProps{Disabled: disabled}, actionURL("/contacts-report/print", p.Selected), pageCtx.T("Report.Print")),
			base.LinkButton(base.ButtonProps{Variant: base.ButtonSecondary, Disabled: disabled}, actionURL("/contacts-report/export", p.Selected), pageCtx.T("Report.Export")),
		))

		return layout.Base(layout.Props{Title: pageCtx.T("Report.Title")}, base.Group(children...)).Render(ctx, w)
	})
}
