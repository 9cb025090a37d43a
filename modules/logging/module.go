// Package logging keeps an in-memory audit trail of operator sessions and
// changes, served on the /debug/audit ops route.
package logging

import (
	"github.com/county-directory/console/modules/logging/handlers"
	"github.com/county-directory/console/modules/logging/infrastructure/persistence"
	"github.com/county-directory/console/modules/logging/presentation/controllers"
	"github.com/county-directory/console/modules/logging/services"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/configuration"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	capacity := configuration.Use().AuditLogCapacity
	app.RegisterServices(
		services.NewLogsService(
			persistence.NewAuthenticationLogRepository(capacity),
			persistence.NewActionLogRepository(capacity),
		),
	)
	app.RegisterControllers(
		controllers.NewLogsController(app),
	)
	handlers.RegisterSessionEventHandlers(app)
	handlers.RegisterEntityEventHandlers(app)
	app.RegisterMiddleware(handlers.ActionLogMiddleware(app))
	return nil
}

func (m *Module) Name() string {
	return "logging"
}
