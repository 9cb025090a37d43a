package base

import (
	"context"
	"io"

	"github.com/a-h/templ"
	icons "github.com/iota-uz/icons/phosphor"
)

type AlertKind string

const (
	AlertError   AlertKind = "error"
	AlertSuccess AlertKind = "success"
	AlertInfo    AlertKind = "info"
)

var alertClasses = map[AlertKind]string{
	AlertError:   "border-red-200 bg-red-50 text-red-800",
	AlertSuccess: "border-green-200 bg-green-50 text-green-800",
	AlertInfo:    "border-blue-200 bg-blue-50 text-blue-800",
}

// Alert renders message in a role="alert" box; an empty message renders nothing.
func Alert(kind AlertKind, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		hw := NewWriter(w).Raw("<div").
			Attr("role", "alert").
			Attr("data-kind", string(kind)).
			Attr("class", "alert mb-4 flex items-center gap-2 rounded-md border p-3 text-sm "+alertClasses[kind]).
			Raw(">")
		if kind == AlertError {
			hw.Component(ctx, icons.Warning(icons.Props{Size: "16"}))
		}
		hw.Raw("<span>").Text(message).Raw("</span></div>")
		return hw.Err()
	})
}
