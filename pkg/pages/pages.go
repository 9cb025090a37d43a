// Package pages holds the request plumbing shared by page controllers.
package pages

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/composables"
)

// Render writes c as the response. Nothing is written once the client has
// gone away.
func Render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	RenderStatus(w, r, http.StatusOK, c)
}

func RenderStatus(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	if Aborted(r) {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		if logger, logErr := composables.TryUseLogger(r.Context()); logErr == nil {
			logger.WithError(err).Error("failed to render page")
		}
	}
}

// Aborted reports whether the request context is done, i.e. the client
// disconnected and any late API result must be dropped.
func Aborted(r *http.Request) bool {
	return r.Context().Err() != nil
}

// LogAPIError records a failed API call: transport failures at warn level,
// server-reported failures at info. Cancellations are not logged.
func LogAPIError(ctx context.Context, err error, msg string) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	logger, logErr := composables.TryUseLogger(ctx)
	if logErr != nil {
		return
	}
	entry := logger.WithError(err)
	if code := apiclient.StatusCode(err); code != 0 {
		entry = entry.WithField("status", code)
	}
	if apiclient.IsTransport(err) {
		entry.Warn(msg)
		return
	}
	entry.Info(msg)
}

// FailureMessage is the server's message for err, or fallback.
func FailureMessage(err error, fallback string) string {
	return apiclient.MessageOr(err, fallback)
}

// ServeDocument streams doc inline, e.g. a PDF report opened in a new tab.
func ServeDocument(w http.ResponseWriter, r *http.Request, doc *apiclient.Document) {
	serveDocument(w, r, doc, "inline")
}

// ServeAttachment streams doc as a download.
func ServeAttachment(w http.ResponseWriter, r *http.Request, doc *apiclient.Document) {
	serveDocument(w, r, doc, "attachment")
}

func serveDocument(w http.ResponseWriter, r *http.Request, doc *apiclient.Document, disposition string) {
	if Aborted(r) {
		return
	}
	h := w.Header()
	h.Set("Content-Type", doc.ContentType)
	h.Set("Content-Length", strconv.Itoa(len(doc.Body)))
	if doc.Filename != "" {
		h.Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": doc.Filename}))
	}
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Body); err != nil {
		if logger, logErr := composables.TryUseLogger(r.Context()); logErr == nil {
			logger.WithError(err).Warn("failed to stream document")
		}
	}
}
