package types

import (
	"testing"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newPageContext(t *testing.T) *PageContext {
	t.Helper()
	bundle := i18n.NewBundle(language.English)
	require.NoError(t, bundle.AddMessages(language.English,
		&i18n.Message{ID: "Report.Title", Other: "Contacts Report by County"},
		&i18n.Message{ID: "Report.NoResults", Other: "No contacts found for {{.County}}."},
	))
	return &PageContext{Locale: language.English, Localizer: i18n.NewLocalizer(bundle, "en")}
}

func TestPageContext_Namespace(t *testing.T) {
	pageCtx := newPageContext(t).Namespace("Report")
	assert.Equal(t, "Contacts Report by County", pageCtx.T("Title"))
	assert.Equal(t, "No contacts found for Nairobi.", pageCtx.T("NoResults", map[string]interface{}{"County": "Nairobi"}))
}

func TestPageContext_TSafe(t *testing.T) {
	pageCtx := newPageContext(t)
	assert.Empty(t, pageCtx.TSafe("Missing.Key"))
	assert.Panics(t, func() { pageCtx.T("Missing.Key") })
}

func TestNavigationItem_VisibleTo(t *testing.T) {
	always := NavigationItem{Name: "Dashboard"}
	in := NavigationItem{Name: "Logout", Visibility: VisibleLoggedIn}
	out := NavigationItem{Name: "Admin", Visibility: VisibleLoggedOut}

	assert.True(t, always.VisibleTo(true))
	assert.True(t, always.VisibleTo(false))
	assert.True(t, in.VisibleTo(true))
	assert.False(t, in.VisibleTo(false))
	assert.False(t, out.VisibleTo(true))
	assert.True(t, out.VisibleTo(false))
}
