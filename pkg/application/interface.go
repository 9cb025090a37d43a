package application

import (
	"embed"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/eventbus"
	"github.com/county-directory/console/pkg/session"
	"github.com/county-directory/console/pkg/types"
)

type Controller interface {
	Register(r *mux.Router)
	Key() string
}

// Application is the registry every module registers into.
type Application interface {
	API() *apiclient.Client
	Sessions() session.Store
	EventPublisher() eventbus.EventBus
	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	HashFsAssets() []*hashfs.FS
	Bundle() *i18n.Bundle
	GetSupportedLanguages() []string
	NavItems(localizer *i18n.Localizer) []types.NavigationItem
	RegisterNavItems(items ...types.NavigationItem)
	RegisterControllers(controllers ...Controller)
	RegisterHashFsAssets(fs ...*hashfs.FS)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	RegisterLocaleFiles(fs ...*embed.FS)
	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
}

type Module interface {
	Name() string
	Register(app Application) error
}
