package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/county-directory/console/modules/contacts/domain/entities/contact"
	"github.com/county-directory/console/modules/core/domain/entities/auth"
	"github.com/county-directory/console/modules/counties/domain/entities/county"
	"github.com/county-directory/console/modules/logging/domain/entities/actionlog"
	"github.com/county-directory/console/modules/logging/services"
	"github.com/county-directory/console/pkg/application"
	"github.com/county-directory/console/pkg/configuration"
)

const (
	EventContactCreated = "contact.created"
	EventContactUpdated = "contact.updated"
	EventCountyCreated  = "county.created"
)

type actionLogWriter interface {
	RecordAction(ctx context.Context, entry *actionlog.ActionLog) error
}

// EntityEventsHandler records the contact and county changes the API
// confirmed, with the entity as returned.
type EntityEventsHandler struct {
	service actionLogWriter
	logger  logrus.FieldLogger
}

func NewEntityEventsHandler(service actionLogWriter, logger logrus.FieldLogger) *EntityEventsHandler {
	return &EntityEventsHandler{service: service, logger: logger}
}

func RegisterEntityEventHandlers(app application.Application) {
	handler := NewEntityEventsHandler(
		app.Service(services.LogsService{}).(*services.LogsService),
		configuration.Use().Logger(),
	)
	bus := app.EventPublisher()
	bus.Subscribe(handler.onContactCreated)
	bus.Subscribe(handler.onContactUpdated)
	bus.Subscribe(handler.onCountyCreated)
}

func (h *EntityEventsHandler) onContactCreated(event contact.CreatedEvent) {
	h.record(EventContactCreated, event.Actor, event.Result, event.At)
}

func (h *EntityEventsHandler) onContactUpdated(event contact.UpdatedEvent) {
	h.record(EventContactUpdated, event.Actor, event.Result, event.At)
}

func (h *EntityEventsHandler) onCountyCreated(event county.CreatedEvent) {
	h.record(EventCountyCreated, event.Actor, event.Result, event.At)
}

func (h *EntityEventsHandler) record(name string, actor auth.Actor, result any, at time.Time) {
	if h.service == nil {
		return
	}
	after, err := json.Marshal(result)
	if err != nil {
		h.warn(err, name)
		return
	}
	entry := &actionlog.ActionLog{
		Username:  actor.Username,
		Event:     name,
		After:     after,
		IP:        actor.IP,
		UserAgent: actor.UserAgent,
		CreatedAt: at,
	}
	if err := h.service.RecordAction(context.Background(), entry); err != nil {
		h.warn(err, name)
	}
}

func (h *EntityEventsHandler) warn(err error, name string) {
	if h.logger == nil {
		return
	}
	h.logger.WithError(err).WithField("event", name).Warn("failed to persist action log")
}
