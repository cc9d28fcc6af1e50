package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type ListPropertiesUseCase struct {
	storage port.ListingStoragePort
}

func NewListPropertiesUseCase(storage port.ListingStoragePort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{storage: storage}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListProperties",
		"filters":  filters,
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.ListProperties(ctx, filters)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(result)})
	return result, nil
}
