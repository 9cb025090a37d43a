package modules

import (
	"github.com/county-directory/console/modules/contacts"
	"github.com/county-directory/console/modules/core"
	"github.com/county-directory/console/modules/counties"
	"github.com/county-directory/console/modules/logging"
	"github.com/county-directory/console/modules/report"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/types"
)

var (
	BuiltInModules = []application.Module{
		core.NewModule(),
		contacts.NewModule(),
		counties.NewModule(),
		report.NewModule(),
		logging.NewModule(),
	}

	// NavLinks in display order; visibility is resolved per request.
	NavLinks = []types.NavigationItem{
		core.DashboardLink,
		core.AdminLink,
		report.ReportLink,
		contacts.AddContactLink,
		counties.AddCountyLink,
		core.AccountLink,
		core.LogoutLink,
	}
)

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
