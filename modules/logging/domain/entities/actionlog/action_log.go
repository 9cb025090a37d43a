package actionlog

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// ActionLog is either a mutating request seen by the console (Method and
// Path set) or a change the API confirmed (Event and After set).
type ActionLog struct {
	ID        uint
	Username  string
	Method    string
	Path      string
	Status    int
	Event     string
	After     json.RawMessage
	IP        string
	UserAgent string
	CreatedAt time.Time
}

type FindParams struct {
	Username string
	Method   string
	// Path matches as a prefix.
	Path   string
	Event  string
	IP     string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

func (p *FindParams) Match(l *ActionLog) bool {
	if p.Username != "" && l.Username != p.Username {
		return false
	}
	if p.Method != "" && !strings.EqualFold(l.Method, p.Method) {
		return false
	}
	if p.Path != "" && !strings.HasPrefix(l.Path, p.Path) {
		return false
	}
	if p.Event != "" && l.Event != p.Event {
		return false
	}
	if p.IP != "" && l.IP != p.IP {
		return false
	}
	if p.From != nil && l.CreatedAt.Before(*p.From) {
		return false
	}
	if p.To != nil && !l.CreatedAt.Before(*p.To) {
		return false
	}
	return true
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]*ActionLog, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	Create(ctx context.Context, log *ActionLog) error
}
