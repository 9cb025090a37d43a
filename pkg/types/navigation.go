package types

import (
	"github.com/a-h/templ"
)

// Visibility decides when a navigation item is shown, based on the session's
// logged-in flag. It is a display hint only and never guards a route.
type Visibility int

const (
	VisibleAlways Visibility = iota
	VisibleLoggedIn
	VisibleLoggedOut
)

type NavigationItem struct {
	Name       string
	Href       string
	Children   []NavigationItem
	Icon       templ.Component
	Visibility Visibility
}

func (n NavigationItem) VisibleTo(loggedIn bool) bool {
	switch n.Visibility {
	case VisibleLoggedIn:
		return loggedIn
	case VisibleLoggedOut:
		return !loggedIn
	default:
		return true
	}
}
