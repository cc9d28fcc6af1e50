package usecase

import (
	"context"
	"errors"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type ListAgenciesUseCase struct {
	storage port.ListingStoragePort
}

func NewListAgenciesUseCase(storage port.ListingStoragePort) *ListAgenciesUseCase {
	return &ListAgenciesUseCase{storage: storage}
}

func (uc *ListAgenciesUseCase) Execute(ctx context.Context) ([]domain.Agency, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListAgencies"})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.ListAgencies(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(result)})
	return result, nil
}

type GetAgencyUseCase struct {
	storage port.ListingStoragePort
}

func NewGetAgencyUseCase(storage port.ListingStoragePort) *GetAgencyUseCase {
	return &GetAgencyUseCase{storage: storage}
}

func (uc *GetAgencyUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "GetAgency",
		"agency_id": id.String(),
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.GetAgency(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ucLogger.Warn("Agency not found", nil)
			return nil, err
		}
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return result, nil
}

type CreateAgencyUseCase struct {
	storage port.ListingStoragePort
}

func NewCreateAgencyUseCase(storage port.ListingStoragePort) *CreateAgencyUseCase {
	return &CreateAgencyUseCase{storage: storage}
}

func (uc *CreateAgencyUseCase) Execute(ctx context.Context, input domain.NewAgency) (*domain.Agency, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateAgency"})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.CreateAgency(ctx, input)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"agency_id": result.ID.String()})
	return result, nil
}
