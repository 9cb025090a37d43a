package commands

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/county-directory/console/modules"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/itf"
)

func bundleFrom(t *testing.T, dir string) *i18n.Bundle {
	t.Helper()
	bundle := application.LoadBundle()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		bundle.MustParseMessageFileBytes(data, e.Name())
	}
	return bundle
}

func TestMissingTrKeys(t *testing.T) {
	missing, err := MissingTrKeys(bundleFrom(t, "testdata/consistent"), []string{"en", "zh"})
	require.NoError(t, err)
	assert.Empty(t, missing)

	missing, err = MissingTrKeys(bundleFrom(t, "testdata/drifted"), []string{"en", "zh"})
	require.NoError(t, err)
	assert.Equal(t, []MissingKey{
		{Locale: "en", Key: "Extra"},
		{Locale: "zh", Key: "Farewell"},
	}, missing)

	_, err = MissingTrKeys(bundleFrom(t, "testdata/consistent"), []string{"en", "uz"})
	require.Error(t, err)
}

func TestBuiltInLocalesDefineSameKeys(t *testing.T) {
	app, err := NewApplication(modules.BuiltInModules...)
	require.NoError(t, err)
	missing, err := MissingTrKeys(app.Bundle(), []string{"en", "zh"})
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCollectTrUsages(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ui", "page.go"), `package ui

func render(pageCtx ctxT, key string) {
	pageCtx.T("Page.Title")
	pageCtx.TSafe("Page.Subtitle")
	pageCtx.T(key)
	intl.MustT(ctx, "Page.Error")
	_ = &i18n.LocalizeConfig{MessageID: "Page.Message"}
}
`)
	writeFile(t, filepath.Join(root, "ui", "page_test.go"), `package ui

func x() { pageCtx.T("Test.Only") }
`)
	writeFile(t, filepath.Join(root, "_examples", "other.go"), `package other

func y() { pageCtx.T("Elsewhere") }
`)

	usages, err := collectTrUsages(root)
	require.NoError(t, err)
	keys := make([]string, 0, len(usages))
	for _, u := range usages {
		keys = append(keys, u.Key)
		assert.Equal(t, "ui/page.go", u.File)
	}
	assert.ElementsMatch(t, []string{"Page.Title", "Page.Subtitle", "Page.Error", "Page.Message"}, keys)
}

func TestUnresolvedUsages(t *testing.T) {
	bundle := bundleFrom(t, "testdata/consistent")
	missing, seen, err := unresolvedUsages(bundle, []string{"en", "zh"}, []trUsage{
		{Key: "Greeting", File: "a.go", Line: 1},
		{Key: "Nope", File: "a.go", Line: 2},
		{Key: "Nope", File: "b.go", Line: 9},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, seen)
	require.Len(t, missing, 2)
	assert.Equal(t, "en", missing[0].Locale)
	assert.Equal(t, "zh", missing[1].Locale)
	assert.Equal(t, 2, missing[0].Line)
}

func TestAPIPing(t *testing.T) {
	api := itf.NewFakeAPI(t).JSON(http.MethodGet, "/counties", http.StatusOK, []map[string]any{
		{"id": 1, "name": "Nairobi", "code": 47},
		{"id": 2, "name": "Mombasa", "code": 1},
	})
	client := apiclient.New(api.URL(), apiclient.WithHTTPClient(api.Server.Client()))

	var out bytes.Buffer
	require.NoError(t, APIPing(context.Background(), client, &out))
	assert.Contains(t, out.String(), "reachable: 2 counties")

	down := itf.NewFakeAPI(t)
	down.Server.Close()
	client = apiclient.New(down.URL(), apiclient.WithHTTPClient(down.Server.Client()))
	err := APIPing(context.Background(), client, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/counties failed")
}

func TestUtilityCommands(t *testing.T) {
	names := []string{}
	for _, c := range NewUtilityCommands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"check_tr_keys", "check_tr_usage", "api-ping"}, names)
}
