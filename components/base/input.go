package base

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const fieldClass = "mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm"

type InputProps struct {
	Label       string
	Name        string
	Type        string
	Value       string
	Placeholder string
	// Error is shown under the field.
	Error string
}

func Input(p InputProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		typ := p.Type
		if typ == "" {
			typ = "text"
		}
		hw := NewWriter(w).Raw(`<label class="block mb-3 text-sm font-medium text-gray-700">`).Text(p.Label)
		hw.Raw("<input").Attr("type", typ).Attr("name", p.Name).Attr("id", p.Name).Attr("class", fieldClass)
		if typ != "password" {
			hw.Attr("value", p.Value)
		}
		if p.Placeholder != "" {
			hw.Attr("placeholder", p.Placeholder)
		}
		hw.Raw(">")
		fieldError(hw, p.Error)
		hw.Raw("</label>")
		return hw.Err()
	})
}

// Hidden carries a value through a form submission; nothing is rendered
// for an empty value.
func Hidden(name, value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if value == "" {
			return nil
		}
		return NewWriter(w).Raw(`<input type="hidden"`).Attr("name", name).Attr("value", value).Raw(">").Err()
	})
}

type Option struct {
	Value string
	Label string
}

type SelectProps struct {
	Label string
	Name  string
	// Placeholder becomes an empty-valued first option.
	Placeholder string
	Options     []Option
	Selected    string
	Error       string
	// AutoSubmit submits the enclosing form on change.
	AutoSubmit bool
}

func Select(p SelectProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w).Raw(`<label class="block mb-3 text-sm font-medium text-gray-700">`).Text(p.Label)
		hw.Raw("<select").Attr("name", p.Name).Attr("id", p.Name).Attr("class", fieldClass)
		if p.AutoSubmit {
			hw.Attr("onchange", "this.form.submit()")
		}
		hw.Raw(">")
		if p.Placeholder != "" {
			hw.Raw(`<option value=""`).AttrIf(p.Selected == "", "selected").Raw(">").Text(p.Placeholder).Raw("</option>")
		}
		for _, o := range p.Options {
			hw.Raw("<option").Attr("value", o.Value).AttrIf(o.Value == p.Selected && p.Selected != "", "selected").Raw(">").
				Text(o.Label).Raw("</option>")
		}
		hw.Raw("</select>")
		fieldError(hw, p.Error)
		hw.Raw("</label>")
		return hw.Err()
	})
}

func fieldError(hw *Writer, msg string) {
	if msg != "" {
		hw.Raw(`<small class="field-error mt-1 block text-xs text-red-600">`).Text(msg).Raw("</small>")
	}
}
