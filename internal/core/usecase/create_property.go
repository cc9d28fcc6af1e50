package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type CreatePropertyUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
}

// NewCreatePropertyUseCase - events может быть nil, тогда события не публикуются
func NewCreatePropertyUseCase(storage port.ListingStoragePort, events port.ListingEventsPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{storage: storage, events: events}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input domain.NewProperty) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":      "CreateProperty",
		"property_type": input.PropertyType,
		"price_type":    input.PriceType,
	})

	ucLogger.Info("Use case started", nil)

	if input.Images == nil {
		input.Images = []string{}
	}
	if input.Amenities == nil {
		input.Amenities = []string{}
	}

	property, err := uc.storage.CreateProperty(ctx, input)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger = ucLogger.WithFields(port.Fields{"property_id": property.ID.String()})

	// Ошибка публикации не отменяет уже сохраненное объявление
	if uc.events != nil {
		if err := uc.events.PublishPropertyCreated(ctx, domain.NewPropertyCreatedEvent(property)); err != nil {
			ucLogger.Error("Failed to publish property created event", err, nil)
		}
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}
