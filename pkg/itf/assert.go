package itf

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Response wraps a recorded response with chainable assertions.
type Response struct {
	t   testing.TB
	rec *httptest.ResponseRecorder
	doc *goquery.Document
}

func (r *Response) Recorder() *httptest.ResponseRecorder {
	return r.rec
}

func (r *Response) Body() string {
	return r.rec.Body.String()
}

// HTML parses the body once and returns the document.
func (r *Response) HTML() *goquery.Document {
	r.t.Helper()
	if r.doc == nil {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(r.Body()))
		require.NoError(r.t, err)
		r.doc = doc
	}
	return r.doc
}

func (r *Response) ExpectStatus(code int) *Response {
	r.t.Helper()
	assert.Equal(r.t, code, r.rec.Code, "unexpected status; body: %s", r.Body())
	return r
}

func (r *Response) ExpectOK() *Response {
	r.t.Helper()
	return r.ExpectStatus(http.StatusOK)
}

func (r *Response) ExpectBodyContains(s string) *Response {
	r.t.Helper()
	assert.Contains(r.t, r.Body(), s)
	return r
}

func (r *Response) ExpectBodyNotContains(s string) *Response {
	r.t.Helper()
	assert.NotContains(r.t, r.Body(), s)
	return r
}

func (r *Response) ExpectHeader(key, value string) *Response {
	r.t.Helper()
	assert.Equal(r.t, value, r.rec.Header().Get(key))
	return r
}

// ExpectElement asserts that the CSS selector matches at least one node.
func (r *Response) ExpectElement(selector string) *Response {
	r.t.Helper()
	assert.Positive(r.t, r.HTML().Find(selector).Length(), "no element matches %q", selector)
	return r
}

func (r *Response) ExpectNoElement(selector string) *Response {
	r.t.Helper()
	assert.Zero(r.t, r.HTML().Find(selector).Length(), "unexpected element matches %q", selector)
	return r
}

func (r *Response) ExpectElementCount(selector string, n int) *Response {
	r.t.Helper()
	assert.Equal(r.t, n, r.HTML().Find(selector).Length(), "count of %q", selector)
	return r
}

// ExpectText asserts the trimmed text of the first match of selector.
func (r *Response) ExpectText(selector, text string) *Response {
	r.t.Helper()
	assert.Equal(r.t, text, strings.TrimSpace(r.HTML().Find(selector).First().Text()))
	return r
}

func (r *Response) ExpectAttr(selector, attr, value string) *Response {
	r.t.Helper()
	got, ok := r.HTML().Find(selector).First().Attr(attr)
	assert.True(r.t, ok, "%q has no attribute %q", selector, attr)
	assert.Equal(r.t, value, got)
	return r
}

// ExpectInputValue asserts the value attribute of the named input.
func (r *Response) ExpectInputValue(name, value string) *Response {
	r.t.Helper()
	got, _ := r.HTML().Find(`[name="` + name + `"]`).First().Attr("value")
	assert.Equal(r.t, value, got, "value of input %q", name)
	return r
}

func (r *Response) Cookie(name string) *http.Cookie {
	for _, c := range r.rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
