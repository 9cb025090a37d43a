package core

import (
	"embed"

	"github.com/county-directory/console/internal/assets"
	"github.com/county-directory/console/modules/core/presentation/controllers"
	"github.com/county-directory/console/modules/core/services"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/configuration"
)

//go:embed presentation/locales/*.json
var LocaleFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterServices(
		services.NewAuthService(app, conf.Session.Duration),
	)
	app.RegisterControllers(
		controllers.NewHealthController(app),
		controllers.NewDashboardController(app),
		controllers.NewLoginController(app),
		controllers.NewSignupController(app),
		controllers.NewLogoutController(app),
		controllers.NewAccountController(app),
	)
	app.RegisterHashFsAssets(assets.HashFS)
	return nil
}

func (m *Module) Name() string {
	return "core"
}
