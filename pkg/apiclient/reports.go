package apiclient

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const pdfMIME = "application/pdf"

func (c *Client) CountyReportPDF(ctx context.Context, countyName string) (*Document, error) {
	path := strings.ReplaceAll(c.reportPath, "{county}", url.PathEscape(countyName))
	return c.document(ctx, "county_report_pdf", path, fmt.Sprintf("contacts-%s.pdf", countyName))
}

func (c *Client) ContactReportPDF(ctx context.Context, id int64) (*Document, error) {
	path := "/persons/pdf-report/" + strconv.FormatInt(id, 10)
	return c.document(ctx, "contact_report_pdf", path, fmt.Sprintf("contact-%d.pdf", id))
}

func (c *Client) document(ctx context.Context, op, path, fallbackName string) (*Document, error) {
	resp, err := c.send(ctx, call{op: op, method: http.MethodGet, path: path, accept: pdfMIME})
	if err != nil {
		return nil, err
	}
	if !mimetype.Detect(resp.body).Is(pdfMIME) {
		return nil, errors.Wrapf(ErrNotPDF, "%s: got %s", op, mimetype.Detect(resp.body).String())
	}
	return &Document{
		ContentType: pdfMIME,
		Filename:    attachmentName(resp.header.Get("Content-Disposition"), fallbackName),
		Body:        resp.body,
	}, nil
}

func attachmentName(disposition, fallback string) string {
	if disposition == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil || params["filename"] == "" {
		return fallback
	}
	return params["filename"]
}
