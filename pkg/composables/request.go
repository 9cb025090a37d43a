package composables

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/county-directory/console/pkg/constants"
	"github.com/county-directory/console/pkg/shared"
	"github.com/county-directory/console/pkg/types"
)

var (
	ErrNoLogger = errors.New("logger not found")
)

type Params struct {
	IP        string
	UserAgent string
	RequestID string
	Request   *http.Request
	Writer    http.ResponseWriter
}

// UseParams returns the request parameters from the context.
// If the parameters are not found, the second return value will be false.
func UseParams(ctx context.Context) (*Params, bool) {
	params, ok := ctx.Value(constants.ParamsKey).(*Params)
	return params, ok
}

// WithParams returns a new context with the request parameters.
func WithParams(ctx context.Context, params *Params) context.Context {
	return context.WithValue(ctx, constants.ParamsKey, params)
}

// UseWriter returns the response writer from the context.
// If the response writer is not found, the second return value will be false.
func UseWriter(ctx context.Context) (http.ResponseWriter, bool) {
	params, ok := UseParams(ctx)
	if !ok {
		return nil, false
	}
	return params.Writer, true
}

// UseLogger returns the request logger from the context.
// Panics when the logging middleware did not run.
func UseLogger(ctx context.Context) *logrus.Entry {
	logger, err := TryUseLogger(ctx)
	if err != nil {
		panic(err)
	}
	return logger
}

func TryUseLogger(ctx context.Context) (*logrus.Entry, error) {
	logger, ok := ctx.Value(constants.LoggerKey).(*logrus.Entry)
	if !ok {
		return nil, ErrNoLogger
	}
	return logger, nil
}

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// UseIP returns the IP address from the context.
// If the IP address is not found, the second return value will be false.
func UseIP(ctx context.Context) (string, bool) {
	params, ok := UseParams(ctx)
	if !ok {
		return "", false
	}
	return params.IP, true
}

// UseUserAgent returns the user agent from the context.
// If the user agent is not found, the second return value will be false.
func UseUserAgent(ctx context.Context) (string, bool) {
	params, ok := UseParams(ctx)
	if !ok {
		return "", false
	}
	return params.UserAgent, true
}

// UsePageCtx returns the page context from the context.
// If the page context is not found, function will panic.
func UsePageCtx(ctx context.Context) types.PageContextProvider {
	if pageCtx, ok := TryUsePageCtx(ctx); ok {
		return pageCtx
	}
	panic("page context not found")
}

// TryUsePageCtx attempts to fetch the page context without panicking.
func TryUsePageCtx(ctx context.Context) (types.PageContextProvider, bool) {
	pageCtx := ctx.Value(constants.PageContext)
	if pageCtx == nil {
		return nil, false
	}
	v, ok := pageCtx.(types.PageContextProvider)
	if !ok {
		return nil, false
	}
	return v, true
}

// WithPageCtx returns a new context with the page context.
// Accepts any type implementing PageContextProvider interface for extensibility.
func WithPageCtx(ctx context.Context, pageCtx types.PageContextProvider) context.Context {
	return context.WithValue(ctx, constants.PageContext, pageCtx)
}

func UseQuery[T comparable](v T, r *http.Request) (T, error) {
	return v, shared.Decoder.Decode(v, r.URL.Query())
}

func UseForm[T comparable](v T, r *http.Request) (T, error) {
	if err := r.ParseForm(); err != nil {
		return v, err
	}
	return v, shared.Decoder.Decode(v, r.Form)
}
