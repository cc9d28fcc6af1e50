package usecase

import (
	"context"
	"errors"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type GetPropertyUseCase struct {
	storage port.ListingStoragePort
}

func NewGetPropertyUseCase(storage port.ListingStoragePort) *GetPropertyUseCase {
	return &GetPropertyUseCase{storage: storage}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetProperty",
		"property_id": id.String(),
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.GetProperty(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ucLogger.Warn("Property not found", nil)
			return nil, err
		}
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return result, nil
}
