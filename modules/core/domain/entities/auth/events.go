// Package auth holds the events the console publishes around operator
// sessions.
package auth

import "time"

// Actor is who triggered an event, as seen by the console.
type Actor struct {
	Username  string
	UserID    int64
	IP        string
	UserAgent string
}

type LoggedInEvent struct {
	Actor     Actor
	SessionID string
	At        time.Time
}

type LoggedOutEvent struct {
	Actor     Actor
	SessionID string
	At        time.Time
}

type SignedUpEvent struct {
	Actor Actor
	// Username of the account that was created.
	Username string
	At       time.Time
}

type PasswordChangedEvent struct {
	Actor  Actor
	UserID int64
	At     time.Time
}
