package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultReportPath = "/persons/pdf-report/county/{county}"

	// maxBodyBytes bounds how much of a response is buffered; PDF reports are the largest payloads.
	maxBodyBytes = 32 << 20
)

// Observer receives one observation per API call. status is 0 for transport failures.
type Observer interface {
	ObserveCall(op string, status int, elapsed time.Duration)
}

type Option func(c *Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithReportPath sets the county PDF path template; {county} is replaced by the escaped name.
func WithReportPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.reportPath = path
		}
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// WithTimeout bounds every call made through the default transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// Client calls the contacts API. It holds no per-user state; the bearer token
// travels in the context of each call.
type Client struct {
	baseURL    string
	reportPath string
	timeout    time.Duration
	http       *http.Client
	logger     logrus.FieldLogger
	observer   Observer
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		reportPath: DefaultReportPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   c.timeout,
		}
	}
	if c.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		c.logger = logger
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type tokenKey struct{}

// WithToken returns a context whose API calls carry the bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

type call struct {
	op     string
	method string
	path   string
	in     any
	accept string
	header http.Header
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func (c *Client) send(ctx context.Context, cl call) (*response, error) {
	var body io.Reader
	if cl.in != nil {
		raw, err := json.Marshal(cl.in)
		if err != nil {
			return nil, errors.Wrapf(err, "apiclient: encode %s body", cl.op)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return nil, errors.Wrapf(err, "apiclient: build %s request", cl.op)
	}
	accept := cl.accept
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)
	if cl.in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range cl.header {
		req.Header[k] = v
	}
	if token, ok := TokenFrom(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger := c.logger.WithFields(logrus.Fields{"op": cl.op, "method": cl.method, "path": cl.path})
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(cl.op, 0, time.Since(start))
		logger.WithError(err).Warn("api call failed")
		return nil, &Error{Op: cl.op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	elapsed := time.Since(start)
	c.observe(cl.op, resp.StatusCode, elapsed)
	if err != nil {
		logger.WithError(err).Warn("api response read failed")
		return nil, &Error{Op: cl.op, Err: err}
	}
	logger.WithFields(logrus.Fields{"status": resp.StatusCode, "elapsed": elapsed}).Debug("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newStatusError(cl.op, resp.StatusCode, raw)
		logger.WithField("status", resp.StatusCode).Info(apiErr.Error())
		return nil, apiErr
	}
	return &response{status: resp.StatusCode, header: resp.Header, body: raw}, nil
}

// doJSON sends the call and decodes a JSON body into out. An empty 2xx body
// leaves out untouched.
func (c *Client) doJSON(ctx context.Context, cl call, out any) (*response, error) {
	resp, err := c.send(ctx, cl)
	if err != nil {
		return nil, err
	}
	if out == nil || len(bytes.TrimSpace(resp.body)) == 0 {
		return resp, nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return nil, errors.Wrapf(err, "apiclient: decode %s response", cl.op)
	}
	return resp, nil
}

func (c *Client) observe(op string, status int, elapsed time.Duration) {
	if c.observer != nil {
		c.observer.ObserveCall(op, status, elapsed)
	}
}
