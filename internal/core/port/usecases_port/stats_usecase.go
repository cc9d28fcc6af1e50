package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type GetStatsUseCase interface {
	Execute(ctx context.Context) (*domain.Stats, error)
}
