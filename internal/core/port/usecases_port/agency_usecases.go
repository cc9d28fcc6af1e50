package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

type ListAgenciesUseCase interface {
	Execute(ctx context.Context) ([]domain.Agency, error)
}

type GetAgencyUseCase interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Agency, error)
}

type CreateAgencyUseCase interface {
	Execute(ctx context.Context, input domain.NewAgency) (*domain.Agency, error)
}
