package persistence

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/county-directory/console/modules/logging/domain/entities/actionlog"
)

type ActionLogRepository struct {
	journal *journal[actionlog.ActionLog]
}

func NewActionLogRepository(capacity int) actionlog.Repository {
	return &ActionLogRepository{
		journal: newJournal[actionlog.ActionLog](capacity),
	}
}

func (r *ActionLogRepository) List(_ context.Context, params *actionlog.FindParams) ([]*actionlog.ActionLog, error) {
	if params == nil {
		params = &actionlog.FindParams{}
	}
	return r.journal.find(params.Match, params.Limit, params.Offset), nil
}

func (r *ActionLogRepository) Count(_ context.Context, params *actionlog.FindParams) (int64, error) {
	if params == nil {
		params = &actionlog.FindParams{}
	}
	return r.journal.count(params.Match), nil
}

func (r *ActionLogRepository) Create(_ context.Context, log *actionlog.ActionLog) error {
	if log == nil {
		return errors.New("action log is nil")
	}
	if log.Event == "" && (log.Method == "" || log.Path == "") {
		return errors.New("action log needs an event or a method and path")
	}
	stored := r.journal.append(*log, func(l *actionlog.ActionLog, id uint) { l.ID = id })
	log.ID = stored.ID
	return nil
}
