// Package layout renders the page shell: document head, navigation bar and
// the optional delayed refresh a successful form schedules.
package layout

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/county-directory/console/components/base"
	"github.com/county-directory/console/internal/assets"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/constants"
	"github.com/county-directory/console/pkg/types"
)

// Refresh navigates the browser to URL once Delay has elapsed.
type Refresh struct {
	URL   string
	Delay time.Duration
}

// Content returns the value of the http-equiv="refresh" meta element.
func (r Refresh) Content() string {
	return strconv.FormatFloat(r.Delay.Seconds(), 'f', -1, 64) + ";url=" + r.URL
}

type Props struct {
	Title   string
	Refresh *Refresh
}

// DefaultHead links the hashed stylesheet.
func DefaultHead() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return base.NewWriter(w).Raw(`<link rel="stylesheet"`).Attr("href", assets.StylesheetPath()).Raw(">").Err()
	})
}

func useComponent(ctx context.Context, key constants.ContextKey) templ.Component {
	c, _ := ctx.Value(key).(templ.Component)
	return c
}

// Base wraps content in the document shell. At most one refresh element is
// emitted.
func Base(p Props, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := "en"
		if pageCtx, ok := composables.TryUsePageCtx(ctx); ok {
			lang = pageCtx.GetLocale().String()
		}
		hw := base.NewWriter(w).Raw("<!DOCTYPE html><html").Attr("lang", lang).Raw(">")
		hw.Raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Raw("<title>").Text(p.Title).Raw("</title>")
		hw.Component(ctx, useComponent(ctx, constants.HeadKey))
		if p.Refresh != nil {
			hw.Raw(`<meta http-equiv="refresh"`).Attr("content", p.Refresh.Content()).Raw(">")
		}
		hw.Raw("</head><body>")
		hw.Component(ctx, Navbar(composables.UseNavItems(ctx)))
		hw.Raw("<main>").Component(ctx, content).Raw("</main></body></html>")
		return hw.Err()
	})
}

// Navbar renders items as links; the link matching the current path is
// marked with aria-current.
func Navbar(items []types.NavigationItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		current := ""
		if pageCtx, ok := composables.TryUsePageCtx(ctx); ok && pageCtx.GetURL() != nil {
			current = pageCtx.GetURL().Path
		}
		hw := base.NewWriter(w).Raw(`<nav class="navbar">`)
		hw.Component(ctx, useComponent(ctx, constants.LogoKey))
		hw.Raw("<ul>")
		writeItems(ctx, hw, items, current)
		hw.Raw("</ul></nav>")
		return hw.Err()
	})
}

func writeItems(ctx context.Context, hw *base.Writer, items []types.NavigationItem, current string) {
	for _, item := range items {
		if len(item.Children) > 0 {
			writeItems(ctx, hw, item.Children, current)
			continue
		}
		hw.Raw("<li><a").Attr("href", item.Href)
		hw.AttrIf(item.Href == current, `aria-current="page"`)
		hw.Raw(">").Component(ctx, item.Icon).Raw("<span>").Text(item.Name).Raw("</span></a></li>")
	}
}
