package authenticationlog

import (
	"context"
	"time"
)

type Kind string

const (
	KindLogin          Kind = "login"
	KindLogout         Kind = "logout"
	KindSignup         Kind = "signup"
	KindPasswordChange Kind = "password_change"
)

type AuthenticationLog struct {
	ID        uint
	Kind      Kind
	Username  string
	UserID    int64
	IP        string
	UserAgent string
	CreatedAt time.Time
}

type FindParams struct {
	Username string
	Kind     Kind
	IP       string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// Match reports whether l passes every filter set in p.
func (p *FindParams) Match(l *AuthenticationLog) bool {
	if p.Username != "" && l.Username != p.Username {
		return false
	}
	if p.Kind != "" && l.Kind != p.Kind {
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
	List(ctx context.Context, params *FindParams) ([]*AuthenticationLog, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	Create(ctx context.Context, log *AuthenticationLog) error
}
