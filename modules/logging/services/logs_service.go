package services

import (
	"context"
	"time"

	"github.com/go-faster/errors"

	"github.com/county-directory/console/modules/logging/domain/entities/actionlog"
	"github.com/county-directory/console/modules/logging/domain/entities/authenticationlog"
)

var ErrEmptyEntry = errors.New("audit entry is required")

// Page is one window of a journal, newest first, with the number of entries
// matching the filter regardless of the window.
type Page[T any] struct {
	Entries []*T
	Total   int64
}

// LogsService records and reads the audit journals.
type LogsService struct {
	authRepo   authenticationlog.Repository
	actionRepo actionlog.Repository
	now        func() time.Time
}

func NewLogsService(
	authRepo authenticationlog.Repository,
	actionRepo actionlog.Repository,
) *LogsService {
	return &LogsService{
		authRepo:   authRepo,
		actionRepo: actionRepo,
		now:        time.Now,
	}
}

func (s *LogsService) Authentications(
	ctx context.Context,
	params *authenticationlog.FindParams,
) (Page[authenticationlog.AuthenticationLog], error) {
	if params == nil {
		params = &authenticationlog.FindParams{}
	}
	var page Page[authenticationlog.AuthenticationLog]
	total, err := s.authRepo.Count(ctx, params)
	if err != nil {
		return page, errors.Wrap(err, "count authentication logs")
	}
	page.Total = total
	if total == 0 {
		return page, nil
	}
	if page.Entries, err = s.authRepo.List(ctx, params); err != nil {
		return page, errors.Wrap(err, "list authentication logs")
	}
	return page, nil
}

func (s *LogsService) Actions(
	ctx context.Context,
	params *actionlog.FindParams,
) (Page[actionlog.ActionLog], error) {
	if params == nil {
		params = &actionlog.FindParams{}
	}
	var page Page[actionlog.ActionLog]
	total, err := s.actionRepo.Count(ctx, params)
	if err != nil {
		return page, errors.Wrap(err, "count action logs")
	}
	page.Total = total
	if total == 0 {
		return page, nil
	}
	if page.Entries, err = s.actionRepo.List(ctx, params); err != nil {
		return page, errors.Wrap(err, "list action logs")
	}
	return page, nil
}

// RecordAuthentication stores entry, stamping it with the current time when
// CreatedAt is unset.
func (s *LogsService) RecordAuthentication(ctx context.Context, entry *authenticationlog.AuthenticationLog) error {
	if entry == nil {
		return ErrEmptyEntry
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	return s.authRepo.Create(ctx, entry)
}

func (s *LogsService) RecordAction(ctx context.Context, entry *actionlog.ActionLog) error {
	if entry == nil {
		return ErrEmptyEntry
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	return s.actionRepo.Create(ctx, entry)
}
