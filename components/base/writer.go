// Package base holds the building blocks every page is rendered from.
package base

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer writes markup and keeps the first error; later writes become no-ops.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s unescaped.
func (hw *Writer) Raw(parts ...string) *Writer {
	for _, s := range parts {
		if hw.err != nil {
			return hw
		}
		_, hw.err = io.WriteString(hw.w, s)
	}
	return hw
}

// Text writes s HTML-escaped.
func (hw *Writer) Text(s string) *Writer {
	return hw.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped.
func (hw *Writer) Attr(name, value string) *Writer {
	return hw.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// AttrIf writes a boolean attribute when on is true.
func (hw *Writer) AttrIf(on bool, name string) *Writer {
	if on {
		hw.Raw(" ", name)
	}
	return hw
}

func (hw *Writer) Component(ctx context.Context, c templ.Component) *Writer {
	if hw.err != nil || c == nil {
		return hw
	}
	hw.err = c.Render(ctx, hw.w)
	return hw
}

func (hw *Writer) Err() error {
	return hw.err
}
