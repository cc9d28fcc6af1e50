package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetStatsUseCase struct {
	storage port.ListingStoragePort
}

func NewGetStatsUseCase(storage port.ListingStoragePort) *GetStatsUseCase {
	return &GetStatsUseCase{storage: storage}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*domain.Stats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetStats",
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.GetStats(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_properties":    result.TotalProperties,
		"featured_properties": result.FeaturedProperties,
	})
	return result, nil
}
