package application

import (
	"context"
	"errors"

	"github.com/county-directory/console/pkg/constants"
)

var ErrAppNotFound = errors.New("application not found in context")

func UseApp(ctx context.Context) (Application, error) {
	app, ok := ctx.Value(constants.AppKey).(Application)
	if !ok {
		return nil, ErrAppNotFound
	}
	return app, nil
}
