package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/benbjohnson/hashfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/county-directory/console/internal/assets"
	"github.com/county-directory/console/modules/core"
	"github.com/county-directory/console/modules/core/presentation/controllers"
	"github.com/county-directory/console/pkg/httpapi"
	"github.com/county-directory/console/pkg/itf"
)

func TestNotFound(t *testing.T) {
	t.Parallel()
	suite := itf.NewSuiteBuilder(t).WithModules(core.NewModule()).Build()
	suite.NotFound(controllers.NotFound())

	suite.GET("/no-such-page").Assert(t).
		ExpectStatus(http.StatusNotFound).
		ExpectText("h1", "404 - Page Not Found").
		ExpectAttr(`main a[href="/"]`, "href", "/")

	rec := suite.GET("/health/x").Header("X-Request-ID", "rid-7").Do()
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var env httpapi.ErrorEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	assert.Equal(t, "NOT_FOUND", env.Code)
	assert.Equal(t, "/health/x", env.Meta["path"])
}

func TestHealthController(t *testing.T) {
	t.Parallel()
	api := itf.NewFakeAPI(t).JSON(http.MethodGet, "/counties", http.StatusOK, []map[string]any{})
	suite := itf.NewSuiteBuilder(t).WithModules(core.NewModule()).WithAPI(api).Build()
	suite.Register(controllers.NewHealthController(suite.Env().App))

	decode := func(t *testing.T, path string, q map[string]string) (int, controllers.HealthResponse) {
		t.Helper()
		rec := suite.GET(path).WithQuery(q).Do()
		var body controllers.HealthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		return rec.Code, body
	}

	code, body := decode(t, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, controllers.HealthResponse{Status: "ok"}, body)
	assert.Empty(t, api.Calls(), "plain liveness must not touch the API")

	code, body = decode(t, "/health", map[string]string{"upstream": "1"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "reachable", body.Upstream)

	api.Server.Close()
	code, body = decode(t, "/health", map[string]string{"upstream": "1"})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, controllers.HealthResponse{Status: "degraded", Upstream: "unreachable"}, body)
}

func TestStaticFilesController(t *testing.T) {
	t.Parallel()
	suite := itf.NewSuiteBuilder(t).Build()
	suite.Register(controllers.NewStaticFilesController([]*hashfs.FS{assets.HashFS}))

	hashed := assets.StylesheetPath()
	require.NotEqual(t, "/assets/css/main.css", hashed)

	rec := suite.GET(hashed).Do()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")

	assert.Equal(t, http.StatusOK, suite.GET("/assets/css/main.css").Do().Code)
	assert.Equal(t, http.StatusNotFound, suite.GET("/assets/css/missing.css").Do().Code)
}
