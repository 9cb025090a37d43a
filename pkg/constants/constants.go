package constants

import (
	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	AppKey         ContextKey = "app"
	LoggerKey      ContextKey = "logger"
	RequestStart   ContextKey = "requestStart"
	RequestIDKey   ContextKey = "requestID"
	ParamsKey      ContextKey = "params"
	PageContext    ContextKey = "pageContext"
	NavItemsKey    ContextKey = "navItems"
	AllNavItemsKey ContextKey = "allNavItems"
	HeadKey        ContextKey = "head"
	LogoKey        ContextKey = "logo"
	SessionKey     ContextKey = "session"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())
