package services

import (
	"context"
	"time"

	coreservices "github.com/county-directory/console/modules/core/services"
	"github.com/county-directory/console/modules/counties/domain/entities/county"
	"github.com/county-directory/console/pkg/apiclient"
	"github.com/county-directory/console/pkg/eventbus"
)

type CountyService struct {
	api       *apiclient.Client
	publisher eventbus.EventBus
	now       func() time.Time
}

func NewCountyService(api *apiclient.Client, publisher eventbus.EventBus) *CountyService {
	return &CountyService{
		api:       api,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *CountyService) Create(ctx context.Context, in apiclient.CountyInput) (*apiclient.County, error) {
	created, err := s.api.CreateCounty(ctx, in)
	if err != nil {
		return nil, err
	}
	result := *created
	if result.Name == "" {
		result.Name, result.Code = in.Name, in.Code
	}
	s.publisher.Publish(county.CreatedEvent{
		Actor:  coreservices.ActorFrom(ctx),
		Result: result,
		At:     s.now(),
	})
	return &result, nil
}
