package mappers

import (
	"time"

	"github.com/county-directory/console/modules/logging/domain/entities/actionlog"
	"github.com/county-directory/console/modules/logging/domain/entities/authenticationlog"
	"github.com/county-directory/console/modules/logging/presentation/viewmodels"
)

func AuthenticationLogToViewModel(log *authenticationlog.AuthenticationLog) *viewmodels.AuthenticationLog {
	if log == nil {
		return nil
	}

	return &viewmodels.AuthenticationLog{
		ID:        log.ID,
		Kind:      string(log.Kind),
		Username:  log.Username,
		UserID:    log.UserID,
		IP:        log.IP,
		UserAgent: log.UserAgent,
		CreatedAt: log.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ActionLogToViewModel(log *actionlog.ActionLog) *viewmodels.ActionLog {
	if log == nil {
		return nil
	}

	return &viewmodels.ActionLog{
		ID:        log.ID,
		Username:  log.Username,
		Method:    log.Method,
		Path:      log.Path,
		Status:    log.Status,
		Event:     log.Event,
		After:     log.After,
		IP:        log.IP,
		UserAgent: log.UserAgent,
		CreatedAt: log.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func MapViewModels[T any, V any](items []T, mapFn func(T) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, mapFn(item))
	}
	return out
}
