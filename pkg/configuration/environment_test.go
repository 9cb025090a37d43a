package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_FallsBackToGoModRoot(t *testing.T) {
	tmp := t.TempDir()

	requireWriteFile(t, filepath.Join(tmp, "go.mod"), "module example.com/test\n\ngo 1.22\n")
	requireWriteFile(t, filepath.Join(tmp, ".env.local"), "COUNTY_CONSOLE_TEST_ENV_LOAD=ok\n")

	sub := filepath.Join(tmp, "modules", "contacts")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(sub))

	_ = os.Unsetenv("COUNTY_CONSOLE_TEST_ENV_LOAD")
	t.Cleanup(func() { _ = os.Unsetenv("COUNTY_CONSOLE_TEST_ENV_LOAD") })

	n, err := LoadEnv([]string{".env", ".env.local"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "ok", os.Getenv("COUNTY_CONSOLE_TEST_ENV_LOAD"))
}

func TestLoadEnv_NoFiles(t *testing.T) {
	tmp := t.TempDir()
	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmp))

	n, err := LoadEnv([]string{".env.does-not-exist"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAPIOptions_Validate(t *testing.T) {
	valid := APIOptions{BaseURL: "http://localhost:8080/api/v1", ReportPDFPath: "/persons/pdf-report/county/{county}"}
	require.NoError(t, valid.Validate())

	noScheme := valid
	noScheme.BaseURL = "localhost:8080"
	require.Error(t, noScheme.Validate())

	noPlaceholder := valid
	noPlaceholder.ReportPDFPath = "/persons/pdf-report"
	require.Error(t, noPlaceholder.Validate())
}

func TestSessionOptions_Validate(t *testing.T) {
	opts := SessionOptions{Storage: "memory", Duration: time.Hour}
	require.NoError(t, opts.Validate())

	opts.Storage = "redis"
	require.Error(t, opts.Validate(), "redis storage needs a URL")

	opts.RedisURL = "redis://localhost:6379/0"
	require.NoError(t, opts.Validate())

	opts.Storage = "disk"
	require.Error(t, opts.Validate())
}

func TestRateLimitOptions_Validate(t *testing.T) {
	opts := RateLimitOptions{GlobalRPS: 10, Storage: "memory"}
	require.NoError(t, opts.Validate())

	opts.GlobalRPS = -1
	require.Error(t, opts.Validate())

	opts.GlobalRPS = 2000000
	require.Error(t, opts.Validate())
}

func TestLogrusLogLevel_DefaultsToError(t *testing.T) {
	c := &Configuration{LogLevel: "verbose"}
	assert.Equal(t, "error", c.LogrusLogLevel().String())
	c.LogLevel = "debug"
	assert.Equal(t, "debug", c.LogrusLogLevel().String())
}

func TestValidate_RedirectDelayBounds(t *testing.T) {
	base := Configuration{
		API:           APIOptions{BaseURL: "http://localhost:8080/api/v1", ReportPDFPath: "/persons/pdf-report/county/{county}"},
		Session:       SessionOptions{Storage: "memory", Duration: time.Hour},
		RateLimit:     RateLimitOptions{GlobalRPS: 10, Storage: "memory"},
		RedirectDelay: 2 * time.Second,
	}
	require.NoError(t, base.validate())

	cases := map[time.Duration]bool{
		0:                       false,
		time.Second:             false,
		MinRedirectDelay:        true,
		1500 * time.Millisecond: true,
		MaxRedirectDelay:        true,
		3 * time.Second:         false,
		2 * time.Minute:         false,
	}
	for delay, ok := range cases {
		c := base
		c.RedirectDelay = delay
		err := c.validate()
		if ok {
			assert.NoError(t, err, delay.String())
			continue
		}
		if assert.Error(t, err, delay.String()) {
			assert.Contains(t, err.Error(), "REDIRECT_DELAY")
		}
	}
}

func requireWriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
