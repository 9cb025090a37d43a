package report

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/county-directory/console/pkg/types"
)

var ReportLink = types.NavigationItem{
	Name: "NavigationLinks.Report",
	Icon: icons.MagnifyingGlass(icons.Props{Size: "20"}),
	Href: "/contacts-report",
}
