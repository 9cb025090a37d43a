// Package session keeps the console's login state server-side, keyed by the
// sid cookie.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	UserID    int64           `json:"userId,omitempty"`
	Token     string          `json:"token"`
	Raw       json.RawMessage `json:"raw,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

func New(username string, userID int64, token string, raw json.RawMessage, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Username:  username,
		UserID:    userID,
		Token:     token,
		Raw:       raw,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// LoggedIn reports whether the session carries a token. It is a display hint;
// authorization happens at the API.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// SetCookie binds the browser to s through an HttpOnly cookie named name.
func SetCookie(w http.ResponseWriter, name string, s *Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    s.ID,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(1, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
