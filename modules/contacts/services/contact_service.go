package services

import (
	"context"
	"time"

	"github.com/county-directory/console/modules/contacts/domain/entities/contact"
	coreservices "github.com/county-directory/console/modules/core/services"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/eventbus"
)

type ContactService struct {
	api       *apiclient.Client
	publisher eventbus.EventBus
	now       func() time.Time
}

func NewContactService(api *apiclient.Client, publisher eventbus.EventBus) *ContactService {
	return &ContactService{
		api:       api,
		publisher: publisher,
		now:       time.Now,
	}
}

// Counties lists the counties a contact can be assigned to.
func (s *ContactService) Counties(ctx context.Context) ([]apiclient.County, error) {
	return s.api.Counties(ctx)
}

func (s *ContactService) GetByID(ctx context.Context, id int64) (*apiclient.Contact, error) {
	return s.api.Contact(ctx, id)
}

func (s *ContactService) Create(ctx context.Context, in apiclient.ContactInput) (*apiclient.Contact, error) {
	created, err := s.api.CreateContact(ctx, in)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(contact.CreatedEvent{
		Actor:  coreservices.ActorFrom(ctx),
		Result: *created,
		At:     s.now(),
	})
	return created, nil
}

func (s *ContactService) Update(ctx context.Context, id int64, in apiclient.ContactInput) (*apiclient.Contact, error) {
	updated, err := s.api.UpdateContact(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(contact.UpdatedEvent{
		Actor:  coreservices.ActorFrom(ctx),
		Result: *updated,
		At:     s.now(),
	})
	return updated, nil
}

// Report fetches the single-contact PDF.
func (s *ContactService) Report(ctx context.Context, id int64) (*apiclient.Document, error) {
	return s.api.ContactReportPDF(ctx, id)
}
