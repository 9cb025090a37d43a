package contact

import (
	"time"

	"github.com/county-directory/console/modules/core/domain/entities/auth"
	"github.com/county-directory/console/pkg/apiclient"
)

type CreatedEvent struct {
	Actor  auth.Actor
	Result apiclient.Contact
	At     time.Time
}

type UpdatedEvent struct {
	Actor  auth.Actor
	Result apiclient.Contact
	At     time.Time
}
