package counties

import (
	"embed"

	"github.com/county-directory/console/modules/counties/presentation/controllers"
	"github.com/county-directory/console/modules/counties/services"
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
		services.NewCountyService(app.API(), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewCountiesController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "counties"
}
