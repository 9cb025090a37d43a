// Package itf drives controllers end to end against a fake contacts API.
package itf

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/constants"
	"github.com/county-directory/console/pkg/eventbus"
	"github.com/county-directory/console/pkg/middleware"
	"github.com/county-directory/console/pkg/session"
)

// TestEnvironment is what a suite was built with.
type TestEnvironment struct {
	App      application.Application
	API      *FakeAPI
	Sessions *session.MemoryStore
	Session  *session.Session
	Logger   *logrus.Logger
}

func (te *TestEnvironment) Service(service interface{}) interface{} {
	return te.App.Service(service)
}

func GetService[T any](te *TestEnvironment) *T {
	var zero T
	return te.App.Service(zero).(*T)
}

type SuiteBuilder struct {
	t        testing.TB
	modules  []application.Module
	api      *FakeAPI
	username string
	token    string
	userID   int64
}

func NewSuiteBuilder(t testing.TB) *SuiteBuilder {
	t.Helper()
	return &SuiteBuilder{t: t}
}

func (b *SuiteBuilder) WithModules(modules ...application.Module) *SuiteBuilder {
	b.modules = append(b.modules, modules...)
	return b
}

// WithAPI uses api instead of a fresh FakeAPI.
func (b *SuiteBuilder) WithAPI(api *FakeAPI) *SuiteBuilder {
	b.api = api
	return b
}

// AsLoggedIn makes every request carry a session for username.
func (b *SuiteBuilder) AsLoggedIn(username, token string) *SuiteBuilder {
	b.username = username
	b.token = token
	return b
}

// WithUserID caches the API user ID in the session.
func (b *SuiteBuilder) WithUserID(id int64) *SuiteBuilder {
	b.userID = id
	return b
}

func (b *SuiteBuilder) Build() *Suite {
	b.t.Helper()
	conf := configuration.Use()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	api := b.api
	if api == nil {
		api = NewFakeAPI(b.t)
	}
	sessions := session.NewMemoryStore()
	app := application.New(&application.ApplicationOptions{
		API:      apiclient.New(api.URL(), apiclient.WithHTTPClient(api.Server.Client())),
		Sessions: sessions,
		EventBus: eventbus.NewEventPublisher(logger),
		Bundle:   application.LoadBundle(),
	})
	for _, m := range b.modules {
		if err := m.Register(app); err != nil {
			b.t.Fatalf("register module %s: %v", m.Name(), err)
		}
	}

	env := &TestEnvironment{App: app, API: api, Sessions: sessions, Logger: logger}
	if b.token != "" {
		s := session.New(b.username, b.userID, b.token, nil, time.Hour)
		if err := sessions.Save(context.Background(), s); err != nil {
			b.t.Fatalf("save session: %v", err)
		}
		env.Session = s
	}

	return &Suite{
		t:          b.t,
		env:        env,
		cookieName: conf.Session.SidCookieKey,
		middlewares: []mux.MiddlewareFunc{
			middleware.WithLogger(logger, middleware.LoggerOptions{}),
			middleware.Provide(constants.AppKey, app),
			middleware.RequestParams(),
			middleware.ProvideSession(sessions, conf.Session.SidCookieKey),
			middleware.ProvideLocalizer(app),
			middleware.WithPageContext(),
			middleware.NavItems(),
		},
	}
}

type Suite struct {
	t           testing.TB
	env         *TestEnvironment
	cookieName  string
	middlewares []mux.MiddlewareFunc
	controllers []application.Controller
	notFound    http.Handler
}

func (s *Suite) Env() *TestEnvironment {
	return s.env
}

func (s *Suite) Register(controllers ...application.Controller) *Suite {
	s.controllers = append(s.controllers, controllers...)
	return s
}

// NotFound sets the handler for unmatched routes.
func (s *Suite) NotFound(h http.Handler) *Suite {
	s.notFound = h
	return s
}

func (s *Suite) handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.middlewares...)
	for _, c := range s.controllers {
		c.Register(r)
	}
	if s.notFound != nil {
		h := s.notFound
		for i := len(s.middlewares) - 1; i >= 0; i-- {
			h = s.middlewares[i](h)
		}
		r.NotFoundHandler = h
	}
	return r
}

func (s *Suite) GET(path string) *Request {
	return s.newRequest(http.MethodGet, path)
}

func (s *Suite) POST(path string) *Request {
	return s.newRequest(http.MethodPost, path)
}

func (s *Suite) newRequest(method, path string) *Request {
	return &Request{suite: s, method: method, path: path, header: http.Header{}}
}

type Request struct {
	suite   *Suite
	method  string
	path    string
	query   url.Values
	form    url.Values
	header  http.Header
	cookies []*http.Cookie
	ctx     context.Context
}

func (r *Request) WithQuery(q map[string]string) *Request {
	if r.query == nil {
		r.query = url.Values{}
	}
	for k, v := range q {
		r.query.Set(k, v)
	}
	return r
}

func (r *Request) FormField(key, value string) *Request {
	if r.form == nil {
		r.form = url.Values{}
	}
	r.form.Add(key, value)
	return r
}

func (r *Request) FormFields(fields map[string]string) *Request {
	for k, v := range fields {
		r.FormField(k, v)
	}
	return r
}

func (r *Request) Header(key, value string) *Request {
	r.header.Set(key, value)
	return r
}

func (r *Request) Cookie(c *http.Cookie) *Request {
	r.cookies = append(r.cookies, c)
	return r
}

// WithContext sets the request context, e.g. one that is already cancelled.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.ctx = ctx
	return r
}

func (r *Request) build() *http.Request {
	target := r.path
	if len(r.query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + r.query.Encode()
	}
	var body io.Reader
	if r.form != nil {
		body = strings.NewReader(r.form.Encode())
	}
	req := httptest.NewRequest(r.method, target, body)
	if r.ctx != nil {
		req = req.WithContext(r.ctx)
	}
	if r.form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range r.header {
		req.Header[k] = v
	}
	if env := r.suite.env; env.Session != nil {
		req.AddCookie(&http.Cookie{Name: r.suite.cookieName, Value: env.Session.ID})
	}
	for _, c := range r.cookies {
		req.AddCookie(c)
	}
	return req
}

// Do performs the request and returns the recorded response.
func (r *Request) Do() *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.suite.handler().ServeHTTP(w, r.build())
	return w
}

func (r *Request) Assert(t testing.TB) *Response {
	t.Helper()
	return &Response{t: t, rec: r.Do()}
}
