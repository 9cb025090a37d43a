package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"

	"github.com/county-directory/console/components/layout"
	"github.com/county-directory/console/internal/assets"
	"github.com/county-directory/console/modules/core/presentation/controllers"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/constants"
	"github.com/county-directory/console/pkg/middleware"
	"github.com/county-directory/console/pkg/routing"
	"github.com/county-directory/console/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Entrypoint    string
}

// Default builds the HTTP server with the global middleware stack in front
// of the middleware registered by modules, so module middleware sees the
// session, localizer and page context.
func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	conf := options.Configuration

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger, middleware.DefaultLoggerOptions()), // This creates the root span for each request

		middleware.TracedMiddleware("provide"),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.HeadKey, layout.DefaultHead()),
		middleware.Provide(constants.LogoKey, assets.DefaultLogo()),

		middleware.TracedMiddleware("opsGuard"),
		middleware.OpsGuard(conf),
	}

	if conf.RateLimit.Enabled {
		var store limiter.Store
		var err error

		switch conf.RateLimit.Storage {
		case "redis":
			store, err = middleware.NewRedisStore(conf.RateLimit.RedisURL)
			if err != nil {
				options.Logger.WithError(err).Warn("Failed to create Redis store for rate limiting, falling back to memory")
				store = middleware.NewMemoryStore()
			}
		default:
			store = middleware.NewMemoryStore()
		}

		routes := routing.NewClassifier(routing.LoadOrDefault(""))
		middlewares = append(middlewares,
			middleware.TracedMiddleware("rateLimit"),
			middleware.RateLimit(middleware.RateLimitConfig{
				RequestsPerPeriod: conf.RateLimit.GlobalRPS,
				Store:             store,
				Skip: func(r *http.Request) bool {
					return !routes.ClassifyPath(r.URL.Path).RateLimited()
				},
			}),
		)
	}

	middlewares = append(middlewares,
		middleware.TracedMiddleware("requestParams"),
		middleware.RequestParams(),
		middleware.TracedMiddleware("session"),
		middleware.ProvideSession(app.Sessions(), conf.Session.SidCookieKey),
		middleware.ProvideLocalizer(app),
		middleware.WithPageContext(),
		middleware.NavItems(),
	)

	handlerOpts := controllers.ErrorHandlersOptions{
		Entrypoint: options.Entrypoint,
	}
	serverInstance := server.NewHTTPServer(
		app,
		controllers.NotFound(handlerOpts),
		controllers.MethodNotAllowed(handlerOpts),
	)
	serverInstance.Middlewares = append(middlewares, serverInstance.Middlewares...)
	return serverInstance, nil
}
