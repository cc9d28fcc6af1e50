package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// DefaultFeaturedLimit используется, если в конфигурации не задано другое значение
const DefaultFeaturedLimit = 10

type GetFeaturedPropertiesUseCase struct {
	storage      port.ListingStoragePort
	defaultLimit int
}

func NewGetFeaturedPropertiesUseCase(storage port.ListingStoragePort, defaultLimit int) *GetFeaturedPropertiesUseCase {
	if defaultLimit <= 0 {
		defaultLimit = DefaultFeaturedLimit
	}
	return &GetFeaturedPropertiesUseCase{storage: storage, defaultLimit: defaultLimit}
}

func (uc *GetFeaturedPropertiesUseCase) Execute(ctx context.Context, limit *int) ([]domain.Property, error) {
	effectiveLimit := uc.defaultLimit
	if limit != nil {
		effectiveLimit = *limit
	}

	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFeaturedProperties",
		"limit":    effectiveLimit,
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.GetFeaturedProperties(ctx, effectiveLimit)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(result)})
	return result, nil
}
