package counties

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/county-directory/console/pkg/types"
)

var AddCountyLink = types.NavigationItem{
	Name:       "NavigationLinks.AddCounty",
	Icon:       icons.Buildings(icons.Props{Size: "20"}),
	Href:       "/add-county",
	Visibility: types.VisibleLoggedIn,
}
