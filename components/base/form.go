package base

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Form renders a POST form to action containing children.
func Form(action string, children ...templ.Component) templ.Component {
	return form("post", "card", action, children)
}

// SearchForm submits children as query parameters of a GET to action.
func SearchForm(action string, children ...templ.Component) templ.Component {
	return form("get", "card search-form", action, children)
}

func form(method, class, action string, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w).Raw("<form").Attr("method", method).Attr("action", action).Attr("class", class).Raw(">")
		for _, c := range children {
			hw.Component(ctx, c)
		}
		return hw.Raw("</form>").Err()
	})
}

// Section renders a titled card.
func Section(title string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w).Raw(`<section class="card"><h2>`).Text(title).Raw("</h2>")
		for _, c := range children {
			hw.Component(ctx, c)
		}
		return hw.Raw("</section>").Err()
	})
}

// Heading renders the page header.
func Heading(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return NewWriter(w).Raw(`<h1 class="page-header">`).Text(title).Raw("</h1>").Err()
	})
}

// Paragraph renders escaped text in a <p>.
func Paragraph(class, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w).Raw("<p")
		if class != "" {
			hw.Attr("class", class)
		}
		return hw.Raw(">").Text(text).Raw("</p>").Err()
	})
}

// Messages renders the error and success alerts of a form page.
func Messages(errorMessage, successMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return NewWriter(w).
			Component(ctx, Alert(AlertError, errorMessage)).
			Component(ctx, Alert(AlertSuccess, successMessage)).
			Err()
	})
}

// Group renders children in order.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		for _, c := range children {
			hw.Component(ctx, c)
		}
		return hw.Err()
	})
}
