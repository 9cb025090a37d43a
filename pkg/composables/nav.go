package composables

import (
	"context"

	"github.com/county-directory/console/pkg/constants"
	"github.com/county-directory/console/pkg/types"
)

// UseNavItems returns the navigation items visible for the current request.
func UseNavItems(ctx context.Context) []types.NavigationItem {
	items, _ := ctx.Value(constants.NavItemsKey).([]types.NavigationItem)
	return items
}

func UseRequestID(ctx context.Context) string {
	id, _ := ctx.Value(constants.RequestIDKey).(string)
	return id
}
