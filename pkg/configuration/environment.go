package configuration

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/iota-uz/utils/fs"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/county-directory/console/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

// LoadEnv loads the given env files from the working directory. Files missing
// there are looked up in the nearest directory containing go.mod, so tests
// running inside a package directory see the repository's .env files.
func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if fs.FileExists(file) {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		if wd, err := os.Getwd(); err == nil {
			if root, ok := findGoModRoot(wd); ok {
				for _, file := range envFiles {
					candidate := filepath.Join(root, file)
					if fs.FileExists(candidate) {
						existingFiles = append(existingFiles, candidate)
					}
				}
			}
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

func findGoModRoot(start string) (string, bool) {
	dir := start
	for {
		if fs.FileExists(filepath.Join(dir, "go.mod")) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

type APIOptions struct {
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8080/api/v1"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
	// Path template of the county PDF report; {county} is replaced with the escaped county name.
	ReportPDFPath string `env:"REPORT_PDF_PATH" envDefault:"/persons/pdf-report/county/{county}"`
}

func (a *APIOptions) Validate() error {
	if strings.TrimSpace(a.BaseURL) == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	if !strings.HasPrefix(a.BaseURL, "http://") && !strings.HasPrefix(a.BaseURL, "https://") {
		return fmt.Errorf("API_BASE_URL must be an http(s) URL, got %q", a.BaseURL)
	}
	if !strings.Contains(a.ReportPDFPath, "{county}") {
		return fmt.Errorf("REPORT_PDF_PATH must contain the {county} placeholder, got %q", a.ReportPDFPath)
	}
	return nil
}

type SessionOptions struct {
	Storage      string        `env:"SESSION_STORAGE" envDefault:"memory"` // memory or redis
	RedisURL     string        `env:"SESSION_REDIS_URL"`
	Duration     time.Duration `env:"SESSION_DURATION" envDefault:"720h"`
	SidCookieKey string        `env:"SID_COOKIE_KEY" envDefault:"sid"`
}

func (s *SessionOptions) Validate() error {
	if s.Storage != "memory" && s.Storage != "redis" {
		return fmt.Errorf("session Storage must be 'memory' or 'redis', got '%s'", s.Storage)
	}
	if s.Storage == "redis" && s.RedisURL == "" {
		return fmt.Errorf("session RedisURL is required when Storage is 'redis'")
	}
	if s.Duration <= 0 {
		return fmt.Errorf("session Duration must be positive, got %s", s.Duration)
	}
	return nil
}

type LogOptions struct {
	LogPath string `env:"LOG_PATH" envDefault:"./logs/app.log"`
}

type OpenTelemetryOptions struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	TempoURL    string `env:"OTEL_TEMPO_URL" envDefault:"localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"county-console"`
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"false"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/debug/prometheus"`
}

// OpsGuardOptions restrict ops routes to trusted networks or token holders.
type OpsGuardOptions struct {
	Enabled bool   `env:"OPS_GUARD_ENABLED" envDefault:"false"`
	CIDRs   string `env:"OPS_GUARD_CIDRS"`
	Token   string `env:"OPS_GUARD_TOKEN"`
}

type RateLimitOptions struct {
	Enabled   bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	GlobalRPS int    `env:"RATE_LIMIT_GLOBAL_RPS" envDefault:"1000"`
	Storage   string `env:"RATE_LIMIT_STORAGE" envDefault:"memory"` // memory or redis
	RedisURL  string `env:"RATE_LIMIT_REDIS_URL"`
}

// Validate checks the rate limit configuration for errors
func (r *RateLimitOptions) Validate() error {
	if r.GlobalRPS < 0 {
		return fmt.Errorf("rate limit GlobalRPS must be non-negative, got %d", r.GlobalRPS)
	}
	if r.GlobalRPS > 1000000 {
		return fmt.Errorf("rate limit GlobalRPS too high, maximum is 1,000,000, got %d", r.GlobalRPS)
	}
	if r.Storage != "memory" && r.Storage != "redis" {
		return fmt.Errorf("rate limit Storage must be 'memory' or 'redis', got '%s'", r.Storage)
	}
	if r.Storage == "redis" && r.RedisURL == "" {
		return fmt.Errorf("rate limit RedisURL is required when Storage is 'redis'")
	}
	return nil
}

type Configuration struct {
	API           APIOptions
	Session       SessionOptions
	Log           LogOptions
	OpenTelemetry OpenTelemetryOptions
	Prometheus    PrometheusOptions
	RateLimit     RateLimitOptions
	OpsGuard      OpsGuardOptions

	ServerPort       int    `env:"PORT" envDefault:"3200"`
	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	SocketAddress    string `env:"-"`
	Domain           string `env:"DOMAIN" envDefault:"localhost"`
	Origin           string `env:"ORIGIN" envDefault:"http://localhost:3200"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"error"`
	// Delay before a successful form navigates to its follow-up page.
	RedirectDelay time.Duration `env:"REDIRECT_DELAY" envDefault:"2s"`
	// Looked up on incoming requests; a random uuidv4 is generated when absent.
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	// Looked up on incoming requests; request.RemoteAddr is used when absent.
	RealIPHeader string `env:"REAL_IP_HEADER" envDefault:"X-Real-IP"`
	// Record mutating requests into the in-memory action log.
	ActionLogEnabled bool `env:"ACTION_LOG_ENABLED" envDefault:"true"`
	// Entries kept per audit journal before the oldest are dropped.
	AuditLogCapacity int `env:"AUDIT_LOG_CAPACITY" envDefault:"1000"`

	logFile io.Closer
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func (c *Configuration) Scheme() string {
	if c.GoAppEnvironment == Production { // assume 'https' on production mode
		return "https"
	}
	return "http"
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	if err := c.validate(); err != nil {
		return err
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.Log.LogPath)
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger

	if c.GoAppEnvironment == Production {
		c.SocketAddress = fmt.Sprintf(":%d", c.ServerPort)
	} else {
		c.SocketAddress = fmt.Sprintf("localhost:%d", c.ServerPort)
	}

	if os.Getenv("ORIGIN") == "" {
		// Only include port in Origin for development environment
		if c.GoAppEnvironment == "development" {
			c.Origin = fmt.Sprintf("%s://%s:%d", c.Scheme(), c.Domain, c.ServerPort)
		} else {
			c.Origin = fmt.Sprintf("%s://%s", c.Scheme(), c.Domain)
		}
	}

	return nil
}

// Bounds for REDIRECT_DELAY.
const (
	MinRedirectDelay = 1200 * time.Millisecond
	MaxRedirectDelay = 2 * time.Second
)

func (c *Configuration) validate() error {
	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("api configuration error: %w", err)
	}
	if err := c.Session.Validate(); err != nil {
		return fmt.Errorf("session configuration error: %w", err)
	}
	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("rate limit configuration error: %w", err)
	}
	if c.OpsGuard.Enabled && c.OpsGuard.CIDRs == "" && c.OpsGuard.Token == "" {
		return fmt.Errorf("OPS_GUARD_ENABLED requires OPS_GUARD_CIDRS or OPS_GUARD_TOKEN")
	}
	if c.AuditLogCapacity < 0 {
		return fmt.Errorf("invalid AUDIT_LOG_CAPACITY=%d (must not be negative)", c.AuditLogCapacity)
	}
	if c.RedirectDelay < MinRedirectDelay || c.RedirectDelay > MaxRedirectDelay {
		return fmt.Errorf("invalid REDIRECT_DELAY=%s (must be between %s and %s)", c.RedirectDelay, MinRedirectDelay, MaxRedirectDelay)
	}
	return nil
}

// Unload handles a graceful shutdown.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
	}
}
