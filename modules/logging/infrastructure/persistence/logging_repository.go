package persistence

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/county-directory/console/modules/logging/domain/entities/authenticationlog"
)

type AuthenticationLogRepository struct {
	journal *journal[authenticationlog.AuthenticationLog]
}

func NewAuthenticationLogRepository(capacity int) authenticationlog.Repository {
	return &AuthenticationLogRepository{
		journal: newJournal[authenticationlog.AuthenticationLog](capacity),
	}
}

func (r *AuthenticationLogRepository) List(_ context.Context, params *authenticationlog.FindParams) ([]*authenticationlog.AuthenticationLog, error) {
	if params == nil {
		params = &authenticationlog.FindParams{}
	}
	return r.journal.find(params.Match, params.Limit, params.Offset), nil
}

func (r *AuthenticationLogRepository) Count(_ context.Context, params *authenticationlog.FindParams) (int64, error) {
	if params == nil {
		params = &authenticationlog.FindParams{}
	}
	return r.journal.count(params.Match), nil
}

func (r *AuthenticationLogRepository) Create(_ context.Context, log *authenticationlog.AuthenticationLog) error {
	if log == nil {
		return errors.New("authentication log is nil")
	}
	if log.Kind == "" {
		return errors.New("authentication log kind is required")
	}
	stored := r.journal.append(*log, func(l *authenticationlog.AuthenticationLog, id uint) { l.ID = id })
	log.ID = stored.ID
	return nil
}
