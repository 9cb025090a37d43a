// Package table renders contact records as an HTML table.
package table

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/county-directory/console/components/base"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/intl"
)

// Record is one row keyed by field name.
type Record = map[string]any

type Column struct {
	Header   string
	Accessor string
	// Href, when set, turns the cell into a link to Href(record).
	Href func(Record) string
}

// CreatedAt is the accessor rendered as a localized date.
const CreatedAt = "createdAt"

// EmptyText is rendered instead of a table when there are no records.
const EmptyText = "No contacts to display."

// DefaultColumns is used when Table is given nil columns.
func DefaultColumns() []Column {
	return []Column{
		{Header: "Name", Accessor: "fullName"},
		{Header: "Email", Accessor: "email"},
		{Header: "Phone", Accessor: "phone"},
		{Header: "D.O.B", Accessor: "dateOfBirth"},
		{Header: "Gender", Accessor: "gender"},
		{Header: "County", Accessor: "countyName"},
	}
}

func Table(records []Record, columns []Column) templ.Component {
	if columns == nil {
		columns = DefaultColumns()
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := base.NewWriter(w)
		if len(records) == 0 {
			return hw.Raw("<p>", EmptyText, "</p>").Err()
		}
		locale := language.English
		if pageCtx, ok := composables.TryUsePageCtx(ctx); ok {
			locale = pageCtx.GetLocale()
		}

		hw.Raw(`<div class="overflow-x-auto"><table class="min-w-full divide-y divide-gray-200 text-sm"><thead class="bg-gray-50"><tr>`)
		for _, c := range columns {
			hw.Raw(`<th class="px-4 py-2 text-left font-semibold text-gray-700">`).Text(c.Header).Raw("</th>")
		}
		hw.Raw(`</tr></thead><tbody class="divide-y divide-gray-100">`)
		for _, rec := range records {
			hw.Raw("<tr>")
			for _, c := range columns {
				hw.Raw(`<td class="px-4 py-2">`)
				if href := cellHref(c, rec); href != "" {
					hw.Raw(`<a class="underline"`).Attr("href", href).Raw(">").Text(Cell(locale, rec, c.Accessor)).Raw("</a>")
				} else {
					hw.Text(Cell(locale, rec, c.Accessor))
				}
				hw.Raw("</td>")
			}
			hw.Raw("</tr>")
		}
		hw.Raw("</tbody></table></div>")
		return hw.Err()
	})
}

func cellHref(c Column, rec Record) string {
	if c.Href == nil {
		return ""
	}
	return c.Href(rec)
}

// Cell returns the display text of rec[accessor]. Only createdAt is
// reformatted; a value that does not parse as a timestamp is shown as is.
func Cell(locale language.Tag, rec Record, accessor string) string {
	v, ok := rec[accessor]
	if !ok || v == nil {
		return ""
	}
	if accessor == CreatedAt {
		switch t := v.(type) {
		case time.Time:
			return intl.FormatDate(locale, t)
		case string:
			if parsed, ok := parseTimestamp(t); ok {
				return intl.FormatDate(locale, parsed)
			}
		}
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
