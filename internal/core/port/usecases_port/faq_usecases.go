package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

type ListFaqsUseCase interface {
	Execute(ctx context.Context, category *domain.FaqCategory) ([]domain.Faq, error)
}

type GetFaqUseCase interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Faq, error)
}

type CreateFaqUseCase interface {
	Execute(ctx context.Context, input domain.NewFaq) (*domain.Faq, error)
}
