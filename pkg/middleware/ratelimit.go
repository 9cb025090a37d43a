package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/configuration"
)

const rateLimitPrefix = "county_console_ratelimit"

type RateLimitConfig struct {
	RequestsPerPeriod int
	// Period defaults to one second.
	Period time.Duration
	// Store defaults to an in-memory store.
	Store limiter.Store
	// KeyFunc defaults to the client IP.
	KeyFunc func(r *http.Request) string
	// Skip exempts requests from the limit.
	Skip func(r *http.Request) bool
}

func NewMemoryStore() limiter.Store {
	return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: rateLimitPrefix})
}

func NewRedisStore(url string) (limiter.Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "ratelimit: parse redis url")
	}
	store, err := sredis.NewStoreWithOptions(redis.NewClient(opts), limiter.StoreOptions{Prefix: rateLimitPrefix})
	if err != nil {
		return nil, errors.Wrap(err, "ratelimit: redis store")
	}
	return store, nil
}

// IPKeyFunc keys requests by the client IP.
func IPKeyFunc(r *http.Request) string {
	if ip, ok := composables.UseIP(r.Context()); ok && ip != "" {
		return "ip:" + ip
	}
	return "ip:" + getRealIP(r, configuration.Use())
}

// EndpointKeyFunc keys requests by endpoint name and client IP.
func EndpointKeyFunc(endpoint string) func(r *http.Request) string {
	return func(r *http.Request) string {
		return "endpoint:" + endpoint + ":" + IPKeyFunc(r)
	}
}

// RateLimit rejects requests over the configured rate with 429. Store
// failures let the request through.
func RateLimit(cfg RateLimitConfig) mux.MiddlewareFunc {
	if cfg.Period <= 0 {
		cfg.Period = time.Second
	}
	if cfg.Store == nil {
		cfg.Store = NewMemoryStore()
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = IPKeyFunc
	}
	lim := limiter.New(cfg.Store, limiter.Rate{Period: cfg.Period, Limit: int64(cfg.RequestsPerPeriod)})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.RequestsPerPeriod <= 0 || (cfg.Skip != nil && cfg.Skip(r)) {
				next.ServeHTTP(w, r)
				return
			}
			res, err := lim.Get(r.Context(), cfg.KeyFunc(r))
			if err != nil {
				if logger, logErr := composables.TryUseLogger(r.Context()); logErr == nil {
					logger.WithError(err).Warn("rate limiter unavailable")
				}
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.Reset, 10))
			if res.Reached {
				retry := time.Until(time.Unix(res.Reset, 0))
				if retry < time.Second {
					retry = time.Second
				}
				w.Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())))
				http.Error(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IPRateLimitPeriod limits each client IP to n requests per period.
func IPRateLimitPeriod(n int, period time.Duration) mux.MiddlewareFunc {
	return RateLimit(RateLimitConfig{RequestsPerPeriod: n, Period: period})
}
