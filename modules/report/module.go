package report

import (
	"embed"

	"github.com/county-directory/console/modules/report/presentation/controllers"
	"github.com/county-directory/console/modules/report/services"
	"github.com/county-directory/console/pkg/application"
)

//go:embed presentation/locales/*.json
var LocaleFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterServices(
		services.NewReportService(app.API()),
	)
	app.RegisterControllers(
		controllers.NewReportController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "report"
}
