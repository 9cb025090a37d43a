package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/county-directory/console/internal/server"
	"github.com/county-directory/console/modules"
	"github.com/county-directory/console/modules/core/presentation/controllers"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/eventbus"
	"github.com/county-directory/console/pkg/logging"
	"github.com/county-directory/console/pkg/metrics"
	"github.com/county-directory/console/pkg/session"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Set up OpenTelemetry if enabled
	if conf.OpenTelemetry.Enabled {
		tracingCleanup := logging.SetupTracing(ctx, conf.OpenTelemetry.ServiceName, conf.OpenTelemetry.TempoURL)
		defer tracingCleanup()
		logger.Info("OpenTelemetry tracing enabled, exporting to Tempo at " + conf.OpenTelemetry.TempoURL)
	}

	storeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	sessions, err := session.NewStore(storeCtx, conf.Session.Storage, conf.Session.RedisURL)
	cancel()
	if err != nil {
		log.Fatalf("failed to create session store: %v", err)
	}

	apiOpts := []apiclient.Option{
		apiclient.WithTimeout(conf.API.Timeout),
		apiclient.WithReportPath(conf.API.ReportPDFPath),
		apiclient.WithLogger(logger.WithField("component", "apiclient")),
	}
	registry := prometheus.NewRegistry()
	if conf.Prometheus.Enabled {
		apiOpts = append(apiOpts, apiclient.WithObserver(metrics.NewAPICollector(registry)))
	}

	app := application.New(&application.ApplicationOptions{
		API:      apiclient.New(conf.API.BaseURL, apiOpts...),
		Sessions: sessions,
		Bundle:   application.LoadBundle(),
		EventBus: eventbus.NewEventPublisher(logger),
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	app.RegisterNavItems(modules.NavLinks...)
	app.RegisterControllers(
		controllers.NewStaticFilesController(app.HashFsAssets()),
	)
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path, registry))
	}
	options := &server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Entrypoint:    "server",
	}
	serverInstance, err := server.Default(options)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(ctx, conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
