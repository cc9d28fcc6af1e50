package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

type ListPropertyCategoriesUseCase interface {
	Execute(ctx context.Context) ([]domain.PropertyCategory, error)
}

type GetPropertyCategoryUseCase interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.PropertyCategory, error)
}

type CreatePropertyCategoryUseCase interface {
	Execute(ctx context.Context, input domain.NewPropertyCategory) (*domain.PropertyCategory, error)
}
