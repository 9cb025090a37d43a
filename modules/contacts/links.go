package contacts

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/county-directory/console/pkg/types"
)

var AddContactLink = types.NavigationItem{
	Name:       "NavigationLinks.AddContact",
	Icon:       icons.PlusCircle(icons.Props{Size: "20"}),
	Href:       "/add-contact",
	Visibility: types.VisibleLoggedIn,
}
