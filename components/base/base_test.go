package base_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/county-directory/console/components/base"
)

func renderDoc(t *testing.T, c templ.Component) (string, *goquery.Document) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return buf.String(), doc
}

type failingWriter struct{ n int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("closed")
}

func TestWriter_StopsAfterFirstError(t *testing.T) {
	fw := &failingWriter{}
	hw := base.NewWriter(fw).Raw("a").Text("b").Attr("c", "d")
	require.Error(t, hw.Err())
	assert.Equal(t, 1, fw.n)
}

func TestWriter_Escapes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, base.NewWriter(&buf).Text(`<a href="x">`).Attr("title", `"q"`).Err())
	assert.Equal(t, `&lt;a href=&#34;x&#34;&gt; title="&#34;q&#34;"`, buf.String())
}

func TestButton(t *testing.T) {
	_, doc := renderDoc(t, base.Button(base.ButtonProps{Class: "px-8"}, "Save"))
	btn := doc.Find("button")
	assert.Equal(t, "Save", btn.Text())
	typ, _ := btn.Attr("type")
	assert.Equal(t, "submit", typ)
	class, _ := btn.Attr("class")
	assert.Contains(t, class, "px-8")
	assert.NotContains(t, class, "px-4")
}

func TestLinkButton_Disabled(t *testing.T) {
	_, doc := renderDoc(t, base.LinkButton(base.ButtonProps{Disabled: true}, "/print", "Print Report"))
	assert.Zero(t, doc.Find("a").Length())
	btn := doc.Find("button[disabled]")
	require.Equal(t, 1, btn.Length())
	_, hasHref := btn.Attr("href")
	assert.False(t, hasHref)

	_, doc = renderDoc(t, base.LinkButton(base.ButtonProps{}, "/print", "Print Report"))
	href, _ := doc.Find("a").Attr("href")
	assert.Equal(t, "/print", href)
}

func TestAlert(t *testing.T) {
	html, _ := renderDoc(t, base.Alert(base.AlertError, ""))
	assert.Empty(t, html)

	_, doc := renderDoc(t, base.Messages("Failed", "Saved"))
	assert.Equal(t, "Failed", doc.Find(`[role="alert"][data-kind="error"]`).Text())
	assert.Equal(t, "Saved", doc.Find(`[role="alert"][data-kind="success"]`).Text())
}

func TestInput(t *testing.T) {
	_, doc := renderDoc(t, base.Input(base.InputProps{Label: "Email", Name: "email", Value: "a@b.c", Error: "Email is required."}))
	v, _ := doc.Find(`input[name="email"]`).Attr("value")
	assert.Equal(t, "a@b.c", v)
	assert.Equal(t, "Email is required.", doc.Find(".field-error").Text())

	_, doc = renderDoc(t, base.Input(base.InputProps{Name: "password", Type: "password", Value: "secret"}))
	_, has := doc.Find(`input[name="password"]`).Attr("value")
	assert.False(t, has, "password values are never echoed")
}

func TestSelect(t *testing.T) {
	_, doc := renderDoc(t, base.Select(base.SelectProps{
		Name:        "gender",
		Placeholder: "Select Gender",
		Options:     []base.Option{{Value: "Male", Label: "Male"}, {Value: "Female", Label: "Female"}},
		Selected:    "Female",
	}))
	assert.Equal(t, 3, doc.Find("option").Length())
	assert.Equal(t, "Female", doc.Find("option[selected]").Text())

	_, doc = renderDoc(t, base.Select(base.SelectProps{Name: "gender", Placeholder: "Select Gender"}))
	v, _ := doc.Find("option[selected]").Attr("value")
	assert.Empty(t, v)
}

func TestSearchFormAndHidden(t *testing.T) {
	_, doc := renderDoc(t, base.SearchForm("/contacts-report", base.Hidden("q", "nai"), base.Hidden("empty", "")))
	form := doc.Find("form")
	method, _ := form.Attr("method")
	assert.Equal(t, "get", method)
	v, _ := form.Find(`input[type="hidden"][name="q"]`).Attr("value")
	assert.Equal(t, "nai", v)
	assert.Zero(t, form.Find(`input[name="empty"]`).Length())
}
