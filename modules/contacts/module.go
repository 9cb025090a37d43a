package contacts

import (
	"embed"

	"github.com/county-directory/console/modules/contacts/presentation/controllers"
	"github.com/county-directory/console/modules/contacts/services"
	"github.com/county-directory/console/pkg/application"
)

//go:embed presentation/locales/*.json presentation/locales/*.toml
var LocaleFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterServices(
		services.NewContactService(app.API(), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewContactsController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "contacts"
}
