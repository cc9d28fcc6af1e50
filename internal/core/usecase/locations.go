package usecase

import (
	"context"
	"errors"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type ListLocationsUseCase struct {
	storage port.ListingStoragePort
}

func NewListLocationsUseCase(storage port.ListingStoragePort) *ListLocationsUseCase {
	return &ListLocationsUseCase{storage: storage}
}

func (uc *ListLocationsUseCase) Execute(ctx context.Context) ([]domain.Location, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListLocations"})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.ListLocations(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(result)})
	return result, nil
}

type GetLocationUseCase struct {
	storage port.ListingStoragePort
}

func NewGetLocationUseCase(storage port.ListingStoragePort) *GetLocationUseCase {
	return &GetLocationUseCase{storage: storage}
}

func (uc *GetLocationUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetLocation",
		"location_id": id.String(),
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.GetLocation(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ucLogger.Warn("Location not found", nil)
			return nil, err
		}
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return result, nil
}

type CreateLocationUseCase struct {
	storage port.ListingStoragePort
}

func NewCreateLocationUseCase(storage port.ListingStoragePort) *CreateLocationUseCase {
	return &CreateLocationUseCase{storage: storage}
}

func (uc *CreateLocationUseCase) Execute(ctx context.Context, input domain.NewLocation) (*domain.Location, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateLocation"})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.CreateLocation(ctx, input)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"location_id": result.ID.String()})
	return result, nil
}
