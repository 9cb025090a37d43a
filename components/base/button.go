package base

import (
	"context"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonDanger
)

var buttonVariants = map[ButtonVariant]string{
	ButtonPrimary:   "bg-blue-600 text-white hover:bg-blue-700",
	ButtonSecondary: "bg-gray-100 text-gray-900 hover:bg-gray-200",
	ButtonDanger:    "bg-red-600 text-white hover:bg-red-700",
}

const buttonBase = "inline-flex items-center gap-2 rounded-md px-4 py-2 text-sm font-medium disabled:cursor-not-allowed disabled:opacity-50"

type ButtonProps struct {
	Variant ButtonVariant
	Type    string
	Name    string
	Value   string
	// Class is merged over the variant classes; conflicting utilities win.
	Class    string
	Disabled bool
	Icon     templ.Component
}

func buttonClass(p ButtonProps) string {
	return twmerge.Merge(buttonBase, buttonVariants[p.Variant], p.Class)
}

func Button(p ButtonProps, label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		typ := p.Type
		if typ == "" {
			typ = "submit"
		}
		hw := NewWriter(w).Raw("<button").Attr("type", typ).Attr("class", buttonClass(p))
		if p.Name != "" {
			hw.Attr("name", p.Name).Attr("value", p.Value)
		}
		hw.AttrIf(p.Disabled, "disabled").Raw(">")
		hw.Component(ctx, p.Icon).Text(label).Raw("</button>")
		return hw.Err()
	})
}

// LinkButton renders an anchor styled as a button. A disabled link renders as
// a disabled button without an href so it cannot navigate.
func LinkButton(p ButtonProps, href, label string) templ.Component {
	if p.Disabled {
		p.Type = "button"
		return Button(p, label)
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w).Raw("<a").Attr("href", href).Attr("class", buttonClass(p)).Raw(">")
		hw.Component(ctx, p.Icon).Text(label).Raw("</a>")
		return hw.Err()
	})
}
