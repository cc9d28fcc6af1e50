package usecase

import (
	"context"
	"errors"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type ListPropertyCategoriesUseCase struct {
	storage port.ListingStoragePort
}

func NewListPropertyCategoriesUseCase(storage port.ListingStoragePort) *ListPropertyCategoriesUseCase {
	return &ListPropertyCategoriesUseCase{storage: storage}
}

func (uc *ListPropertyCategoriesUseCase) Execute(ctx context.Context) ([]domain.PropertyCategory, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListPropertyCategories"})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.ListPropertyCategories(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(result)})
	return result, nil
}

type GetPropertyCategoryUseCase struct {
	storage port.ListingStoragePort
}

func NewGetPropertyCategoryUseCase(storage port.ListingStoragePort) *GetPropertyCategoryUseCase {
	return &GetPropertyCategoryUseCase{storage: storage}
}

func (uc *GetPropertyCategoryUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.PropertyCategory, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyCategory",
		"category_id": id.String(),
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.GetPropertyCategory(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ucLogger.Warn("Property category not found", nil)
			return nil, err
		}
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return result, nil
}

type CreatePropertyCategoryUseCase struct {
	storage port.ListingStoragePort
}

func NewCreatePropertyCategoryUseCase(storage port.ListingStoragePort) *CreatePropertyCategoryUseCase {
	return &CreatePropertyCategoryUseCase{storage: storage}
}

func (uc *CreatePropertyCategoryUseCase) Execute(ctx context.Context, input domain.NewPropertyCategory) (*domain.PropertyCategory, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreatePropertyCategory"})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.CreatePropertyCategory(ctx, input)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"category_id": result.ID.String()})
	return result, nil
}
