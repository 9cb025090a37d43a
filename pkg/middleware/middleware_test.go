package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/constants"
	"github.com/county-directory/console/pkg/intl"
	"github.com/county-directory/console/pkg/session"
	"github.com/county-directory/console/pkg/types"
)

func TestVisibleNavItems(t *testing.T) {
	items := []types.NavigationItem{
		{Name: "Dashboard", Href: "/"},
		{Name: "Admin", Href: "/signup", Visibility: types.VisibleLoggedOut},
		{Name: "Contacts Report", Href: "/contacts-report"},
		{Name: "Add Contact", Href: "/add-contact", Visibility: types.VisibleLoggedIn},
		{Name: "Manage", Children: []types.NavigationItem{
			{Name: "Account", Href: "/account/password", Visibility: types.VisibleLoggedIn},
		}},
		{Name: "Logout", Href: "/logout", Visibility: types.VisibleLoggedIn},
	}

	hrefs := func(items []types.NavigationItem) []string {
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, item.Href)
		}
		return out
	}

	assert.Equal(t, []string{"/", "/signup", "/contacts-report"}, hrefs(VisibleNavItems(items, false)))
	assert.Equal(t,
		[]string{"/", "/contacts-report", "/add-contact", "/account/password", "/logout"},
		hrefs(VisibleNavItems(items, true)),
	)
}

func TestWithLoginState(t *testing.T) {
	all := []types.NavigationItem{
		{Name: "Dashboard", Href: "/"},
		{Name: "Admin", Href: "/signup", Visibility: types.VisibleLoggedOut},
		{Name: "Logout", Href: "/logout", Visibility: types.VisibleLoggedIn},
	}
	ctx := context.WithValue(context.Background(), constants.AllNavItemsKey, all)
	ctx = context.WithValue(ctx, constants.NavItemsKey, VisibleNavItems(all, false))
	ctx = composables.WithPageCtx(ctx, &types.PageContext{Locale: language.English})

	in := WithLoginState(ctx, session.New("admin", 1, "tok", nil, time.Hour))
	assert.True(t, composables.UseLoggedIn(in))
	assert.True(t, composables.UsePageCtx(in).LoggedIn())
	require.Len(t, composables.UseNavItems(in), 2)
	assert.Equal(t, "/logout", composables.UseNavItems(in)[1].Href)

	out := WithLoginState(in, nil)
	assert.False(t, composables.UseLoggedIn(out))
	assert.False(t, composables.UsePageCtx(out).LoggedIn())
	assert.Equal(t, "/signup", composables.UseNavItems(out)[1].Href)
	assert.False(t, composables.UsePageCtx(ctx).LoggedIn(), "original page context untouched")
}

func TestRedactForm(t *testing.T) {
	got := redactForm(url.Values{
		"Username":        {"alice"},
		"Password":        {"secret"},
		"ConfirmPassword": {"secret"},
	})
	assert.Equal(t, "alice", got["Username"])
	assert.Equal(t, "[redacted]", got["Password"])
	assert.Equal(t, "[redacted]", got["ConfirmPassword"])
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(RateLimitConfig{
		RequestsPerPeriod: 2,
		Period:            time.Minute,
		KeyFunc:           func(r *http.Request) string { return r.Header.Get("X-Client") },
		Skip:              func(r *http.Request) bool { return r.URL.Path == "/health" },
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(client, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set("X-Client", client)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, do("a", "/login").Code)
	assert.Equal(t, http.StatusNoContent, do("a", "/login").Code)
	limited := do("a", "/login")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))
	assert.Equal(t, "0", limited.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusNoContent, do("b", "/login").Code, "limits are per key")
	assert.Equal(t, http.StatusNoContent, do("a", "/health").Code, "skipped paths are not limited")
}

func TestProvideSession(t *testing.T) {
	store := session.NewMemoryStore()
	s := session.New("alice", 4, "tok", nil, time.Hour)
	require.NoError(t, store.Save(context.Background(), s))

	var gotSession *session.Session
	var gotToken string
	handler := ProvideSession(store, "sid")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = composables.UseSession(r.Context())
		gotToken, _ = apiclient.TokenFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: s.ID})
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.NotNil(t, gotSession)
	assert.Equal(t, "alice", gotSession.Username)
	assert.Equal(t, "tok", gotToken)

	gotSession, gotToken = nil, ""
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "unknown"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Nil(t, gotSession)
	assert.Empty(t, gotToken)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, "sid", cleared[0].Name)
	assert.Empty(t, cleared[0].Value)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestProvideSession_ExpiredSessionClearsCookie(t *testing.T) {
	store := session.NewMemoryStore()
	s := session.New("alice", 4, "tok", nil, time.Hour)
	s.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Save(context.Background(), s))

	var gotSession *session.Session
	handler := ProvideSession(store, "sid")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = composables.UseSession(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: s.ID})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Nil(t, gotSession)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestProvideSession_NoCookieLeavesResponseAlone(t *testing.T) {
	handler := ProvideSession(session.NewMemoryStore(), "sid")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, rec.Result().Cookies())
}

type bundleApp struct {
	bundle *i18n.Bundle
}

func (a bundleApp) Bundle() *i18n.Bundle            { return a.bundle }
func (a bundleApp) GetSupportedLanguages() []string { return []string{"en", "zh"} }

func TestProvideLocalizer_MatchesAcceptLanguage(t *testing.T) {
	bundle := i18n.NewBundle(language.English)
	var got language.Tag
	handler := ProvideLocalizer(bundleApp{bundle: bundle})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = intl.UseLocale(r.Context())
		_, ok := intl.UseLocalizer(r.Context())
		assert.True(t, ok)
	}))

	cases := map[string]language.Tag{
		"":                  language.English,
		"zh-CN,zh;q=0.9":    language.Chinese,
		"fr-FR":             language.English,
		"de;q=0.5,zh;q=0.7": language.Chinese,
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Accept-Language", header)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)
		base, _ := got.Base()
		wantBase, _ := want.Base()
		assert.Equal(t, wantBase, base, header)
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.5:5123"
	assert.Equal(t, "10.0.0.5", clientIP(r, "X-Real-IP"))

	r.Header.Set("X-Real-IP", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientIP(r, "X-Real-IP"))
}

func TestOpsGuardAuthorization(t *testing.T) {
	g := &opsGuard{
		opts:  configuration.OpsGuardOptions{Enabled: true, Token: "s3cret"},
		cidrs: parseCIDRs("10.0.0.0/8, bogus"),
	}
	require.Len(t, g.cidrs, 1)

	inside := httptest.NewRequest(http.MethodGet, "/health", nil)
	inside.RemoteAddr = "10.1.2.3:1"
	assert.True(t, g.authorized(inside))

	outside := httptest.NewRequest(http.MethodGet, "/health", nil)
	outside.RemoteAddr = "198.51.100.1:1"
	assert.False(t, g.authorized(outside))

	outside.Header.Set("Authorization", "Bearer s3cret")
	assert.True(t, g.authorized(outside))

	outside.Header.Set("Authorization", "Bearer wrong")
	assert.False(t, g.authorized(outside))
}
