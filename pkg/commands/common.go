package commands

import (
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/configuration"
	"github.com/county-directory/console/pkg/eventbus"
	"github.com/county-directory/console/pkg/logging"
	"github.com/county-directory/console/pkg/session"
)

// NewApplication builds an application for command-line use with the
// configured API client, in-memory sessions and a stdout logger.
func NewApplication(mods ...application.Module) (application.Application, error) {
	conf := configuration.Use()
	logger := logging.ConsoleLogger(conf.LogrusLogLevel())
	app := application.New(&application.ApplicationOptions{
		API: apiclient.New(conf.API.BaseURL,
			apiclient.WithTimeout(conf.API.Timeout),
			apiclient.WithReportPath(conf.API.ReportPDFPath),
			apiclient.WithLogger(logger),
		),
		Sessions: session.NewMemoryStore(),
		EventBus: eventbus.NewEventPublisher(logger),
		Bundle:   application.LoadBundle(),
	})
	for _, m := range mods {
		if err := m.Register(app); err != nil {
			return nil, err
		}
	}
	return app, nil
}
