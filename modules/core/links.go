package core

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/county-directory/console/pkg/types"
)

var DashboardLink = types.NavigationItem{
	Name: "NavigationLinks.Dashboard",
	Icon: icons.Gauge(icons.Props{Size: "20"}),
	Href: "/",
}

var AdminLink = types.NavigationItem{
	Name:       "NavigationLinks.Admin",
	Icon:       icons.UserCircle(icons.Props{Size: "20"}),
	Href:       "/signup",
	Visibility: types.VisibleLoggedOut,
}

var AccountLink = types.NavigationItem{
	Name:       "NavigationLinks.Account",
	Icon:       icons.UserCircle(icons.Props{Size: "20"}),
	Href:       "/account/password",
	Visibility: types.VisibleLoggedIn,
}

var LogoutLink = types.NavigationItem{
	Name:       "NavigationLinks.Logout",
	Href:       "/logout",
	Visibility: types.VisibleLoggedIn,
}
