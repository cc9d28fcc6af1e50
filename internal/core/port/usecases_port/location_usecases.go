package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

type ListLocationsUseCase interface {
	Execute(ctx context.Context) ([]domain.Location, error)
}

type GetLocationUseCase interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Location, error)
}

type CreateLocationUseCase interface {
	Execute(ctx context.Context, input domain.NewLocation) (*domain.Location, error)
}
