package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

type ListPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error)
}

type GetPropertyUseCase interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}

type GetFeaturedPropertiesUseCase interface {
	Execute(ctx context.Context, limit *int) ([]domain.Property, error)
}

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, input domain.NewProperty) (*domain.Property, error)
}
