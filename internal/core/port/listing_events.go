package port

import (
	"context"
	"listing-service/internal/core/domain"
)

type ListingEventsPort interface {
	PublishPropertyCreated(ctx context.Context, event domain.PropertyCreatedEvent) error
}
