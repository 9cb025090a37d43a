// Package assets embeds the console's stylesheet and logo.
package assets

import (
	"context"
	"embed"
	"io"

	"github.com/a-h/templ"
	"github.com/benbjohnson/hashfs"
)

//go:embed css/*.css
var FS embed.FS

var HashFS = hashfs.NewFS(FS)

// StylesheetPath is the content-hashed URL of the main stylesheet.
func StylesheetPath() string {
	return "/assets/" + HashFS.HashName("css/main.css")
}

func DefaultLogo() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<span class="logo font-semibold tracking-tight">County Directory</span>`)
		return err
	})
}
