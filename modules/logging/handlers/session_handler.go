package handlers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/county-directory/console/modules/core/domain/entities/auth"
	"github.com/county-directory/console/modules/logging/domain/entities/authenticationlog"
	"github.com/county-directory/console/modules/logging/services"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/configuration"
)

type authenticationLogWriter interface {
	RecordAuthentication(ctx context.Context, entry *authenticationlog.AuthenticationLog) error
}

// SessionEventsHandler turns operator session events into authentication
// logs.
type SessionEventsHandler struct {
	service authenticationLogWriter
	logger  logrus.FieldLogger
}

func NewSessionEventsHandler(service authenticationLogWriter, logger logrus.FieldLogger) *SessionEventsHandler {
	return &SessionEventsHandler{service: service, logger: logger}
}

func RegisterSessionEventHandlers(app application.Application) {
	handler := NewSessionEventsHandler(
		app.Service(services.LogsService{}).(*services.LogsService),
		configuration.Use().Logger(),
	)
	bus := app.EventPublisher()
	bus.Subscribe(handler.onLoggedIn)
	bus.Subscribe(handler.onLoggedOut)
	bus.Subscribe(handler.onSignedUp)
	bus.Subscribe(handler.onPasswordChanged)
}

func (h *SessionEventsHandler) onLoggedIn(event auth.LoggedInEvent) {
	h.record(authenticationlog.KindLogin, event.Actor, event.Actor.Username, event.At)
}

func (h *SessionEventsHandler) onLoggedOut(event auth.LoggedOutEvent) {
	h.record(authenticationlog.KindLogout, event.Actor, event.Actor.Username, event.At)
}

// The created account is logged, not the anonymous actor who submitted the
// form.
func (h *SessionEventsHandler) onSignedUp(event auth.SignedUpEvent) {
	h.record(authenticationlog.KindSignup, event.Actor, event.Username, event.At)
}

func (h *SessionEventsHandler) onPasswordChanged(event auth.PasswordChangedEvent) {
	actor := event.Actor
	if event.UserID != 0 {
		actor.UserID = event.UserID
	}
	h.record(authenticationlog.KindPasswordChange, actor, actor.Username, event.At)
}

func (h *SessionEventsHandler) record(kind authenticationlog.Kind, actor auth.Actor, username string, at time.Time) {
	if h.service == nil {
		return
	}
	entry := &authenticationlog.AuthenticationLog{
		Kind:      kind,
		Username:  username,
		UserID:    actor.UserID,
		IP:        actor.IP,
		UserAgent: actor.UserAgent,
		CreatedAt: at,
	}
	if err := h.service.RecordAuthentication(context.Background(), entry); err != nil && h.logger != nil {
		h.logger.WithError(err).
			WithField("username", username).
			WithField("kind", kind).
			Warn("failed to persist authentication log")
	}
}
