package services

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/county-directory/console/modules/core/domain/entities/auth"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/composables"
	"github.com/county-directory/console/pkg/eventbus"
	"github.com/county-directory/console/pkg/session"
)

// AuthService turns API authentication results into console sessions.
type AuthService struct {
	api       *apiclient.Client
	sessions  session.Store
	publisher eventbus.EventBus
	ttl       time.Duration
	now       func() time.Time
}

func NewAuthService(app application.Application, ttl time.Duration) *AuthService {
	return &AuthService{
		api:       app.API(),
		sessions:  app.Sessions(),
		publisher: app.EventPublisher(),
		ttl:       ttl,
		now:       time.Now,
	}
}

// ActorFrom describes the requester for event payloads.
func ActorFrom(ctx context.Context) auth.Actor {
	a := auth.Actor{}
	if s := composables.UseSession(ctx); s != nil {
		a.Username = s.Username
		a.UserID = s.UserID
	}
	a.IP, _ = composables.UseIP(ctx)
	a.UserAgent, _ = composables.UseUserAgent(ctx)
	return a
}

// Login authenticates against the API and stores a session for the result.
// The session is saved even when the API returned no token; it then does
// not count as logged in.
func (s *AuthService) Login(ctx context.Context, creds apiclient.Credentials) (*session.Session, error) {
	user, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	sess := session.New(user.Username, user.ID, user.Token, user.Raw, s.ttl)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "save session")
	}
	actor := ActorFrom(ctx)
	actor.Username, actor.UserID = sess.Username, sess.UserID
	s.publish(auth.LoggedInEvent{Actor: actor, SessionID: sess.ID, At: s.now()})
	return sess, nil
}

func (s *AuthService) SignUp(ctx context.Context, creds apiclient.Credentials) (*apiclient.User, error) {
	user, err := s.api.SignUp(ctx, creds)
	if err != nil {
		return nil, err
	}
	s.publish(auth.SignedUpEvent{Actor: ActorFrom(ctx), Username: user.Username, At: s.now()})
	return user, nil
}

// Logout forgets sess. A nil session is a no-op.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return errors.Wrap(err, "delete session")
	}
	s.publish(auth.LoggedOutEvent{Actor: ActorFrom(ctx), SessionID: sess.ID, At: s.now()})
	return nil
}

// ChangePassword updates the password of username. The user ID cached in
// sess is reused when sess belongs to username; after a lookup the resolved
// ID is cached for the next change.
func (s *AuthService) ChangePassword(ctx context.Context, sess *session.Session, username, password string) (*apiclient.User, error) {
	change := apiclient.PasswordChange{Username: username, Password: password}
	if sess != nil && sess.Username == username {
		change.UserID = sess.UserID
	}
	user, err := s.api.ChangePassword(ctx, change)
	if err != nil {
		return nil, err
	}
	if sess != nil && sess.Username == username && sess.UserID == 0 && user.ID != 0 {
		sess.UserID = user.ID
		if err := s.sessions.Save(ctx, sess); err != nil {
			if logger, logErr := composables.TryUseLogger(ctx); logErr == nil {
				logger.WithError(err).Warn("failed to cache user id in session")
			}
		}
	}
	s.publish(auth.PasswordChangedEvent{Actor: ActorFrom(ctx), UserID: user.ID, At: s.now()})
	return user, nil
}

func (s *AuthService) publish(event any) {
	if s.publisher != nil {
		s.publisher.Publish(event)
	}
}
