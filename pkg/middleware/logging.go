package middleware

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/constants"
	"github.com/county-directory/console/pkg/httpapi"
	"github.com/county-directory/console/pkg/routing"
)

type LoggerOptions struct {
	// LogFormBody logs url-encoded POST bodies with secret fields redacted.
	LogFormBody   bool
	AllowlistPath string
	Repanic       bool
}

func DefaultLoggerOptions() LoggerOptions {
	return LoggerOptions{LogFormBody: true}
}

var redactedFields = []string{"password", "token", "confirm"}

type statusWriter struct {
	http.ResponseWriter
	statusCode    int
	statusWritten bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.statusWritten {
		w.statusCode = code
		w.statusWritten = true
		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.statusWritten {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Status() int {
	if w.statusCode == 0 {
		return http.StatusOK
	}
	return w.statusCode
}

func (w *statusWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("underlying ResponseWriter does not implement http.Hijacker")
}

func getRealIP(r *http.Request, conf *configuration.Configuration) string {
	return clientIP(r, conf.RealIPHeader)
}

func getRequestID(r *http.Request, conf *configuration.Configuration) string {
	if id := r.Header.Get(conf.RequestIDHeader); id != "" {
		return id
	}
	return uuid.New().String()
}

var tracer = otel.Tracer("county-console-middleware")

func TracedMiddleware(name string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(
				r.Context(),
				"middleware."+name,
				trace.WithAttributes(attribute.String("middleware.name", name)),
			)
			defer span.End()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func redactForm(f url.Values) map[string]string {
	out := make(map[string]string, len(f))
	for key, values := range f {
		lower := strings.ToLower(key)
		secret := false
		for _, field := range redactedFields {
			if strings.Contains(lower, field) {
				secret = true
				break
			}
		}
		if secret {
			out[key] = "[redacted]"
			continue
		}
		out[key] = strings.Join(values, ",")
	}
	return out
}

// WithLogger starts the request span, stores a request scoped logger in the
// context and recovers panics. Panics on ops routes are answered with a JSON
// envelope, everything else gets a plain 500.
func WithLogger(logger *logrus.Logger, opts LoggerOptions) mux.MiddlewareFunc {
	conf := configuration.Use()
	classifier := routing.NewClassifier(routing.LoadOrDefault(opts.AllowlistPath))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := getRequestID(r, conf)
			ip := getRealIP(r, conf)

			fieldsLogger := logger.WithFields(logrus.Fields{
				"request-id": requestID,
				"path":       r.URL.Path,
				"method":     r.Method,
			})
			fieldsLogger.WithFields(logrus.Fields{
				"host":       r.Host,
				"ip":         ip,
				"user-agent": r.UserAgent(),
			}).Info("request started")

			if opts.LogFormBody && r.Method == http.MethodPost &&
				strings.Contains(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
				if err := r.ParseForm(); err != nil {
					fieldsLogger.WithError(err).Warn("failed to parse form body")
				} else {
					fieldsLogger.WithField("form", redactForm(r.PostForm)).Debug("form body")
				}
			}

			propagator := propagation.TraceContext{}
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(
				ctx,
				"http.request",
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.route", r.URL.Path),
					attribute.String("http.user_agent", r.UserAgent()),
					attribute.String("http.request_id", requestID),
					attribute.String("net.peer.ip", ip),
				),
			)
			defer span.End()

			if sc := span.SpanContext(); sc.HasTraceID() {
				w.Header().Set("X-Trace-Id", sc.TraceID().String())
				fieldsLogger = fieldsLogger.WithFields(logrus.Fields{
					"trace-id": sc.TraceID().String(),
					"span-id":  sc.SpanID().String(),
				})
			}
			w.Header().Set("X-Request-Id", requestID)

			ctx = composables.WithLogger(ctx, fieldsLogger)
			ctx = context.WithValue(ctx, constants.RequestStart, start)
			ctx = context.WithValue(ctx, constants.RequestIDKey, requestID)

			sw := &statusWriter{ResponseWriter: w}
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				fieldsLogger.WithFields(logrus.Fields{
					"panic":    recovered,
					"stack":    string(debug.Stack()),
					"ip":       ip,
					"duration": time.Since(start),
				}).Error("panic recovered in request handler")

				if !sw.statusWritten {
					if classifier.ClassifyPath(r.URL.Path).JSON() {
						_ = httpapi.WriteError(sw, http.StatusInternalServerError,
							"INTERNAL_SERVER_ERROR", "internal server error", httpapi.RequestMeta(r, requestID))
					} else {
						http.Error(sw, "Internal Server Error", http.StatusInternalServerError)
					}
				}
				if opts.Repanic {
					panic(recovered)
				}
			}()

			next.ServeHTTP(sw, r.WithContext(ctx))

			duration := time.Since(start)
			status := sw.Status()
			fieldsLogger.WithFields(logrus.Fields{
				"duration":     duration,
				"status-code":  status,
				"status-class": status / 100,
			}).Info("request completed")
			span.SetAttributes(
				attribute.Int64("http.request_duration_ms", duration.Milliseconds()),
				attribute.Int("http.status_code", status),
			)
		})
	}
}
