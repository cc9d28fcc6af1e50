package usecase

import (
	"context"
	"errors"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type ListFaqsUseCase struct {
	storage port.ListingStoragePort
}

func NewListFaqsUseCase(storage port.ListingStoragePort) *ListFaqsUseCase {
	return &ListFaqsUseCase{storage: storage}
}

// Execute возвращает только активные вопросы, опционально одной категории
func (uc *ListFaqsUseCase) Execute(ctx context.Context, category *domain.FaqCategory) ([]domain.Faq, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	fields := port.Fields{"use_case": "ListFaqs"}
	if category != nil {
		fields["category"] = string(*category)
	}
	ucLogger := logger.WithFields(fields)

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.ListFaqs(ctx, category)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(result)})
	return result, nil
}

type GetFaqUseCase struct {
	storage port.ListingStoragePort
}

func NewGetFaqUseCase(storage port.ListingStoragePort) *GetFaqUseCase {
	return &GetFaqUseCase{storage: storage}
}

func (uc *GetFaqUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Faq, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFaq",
		"faq_id":   id.String(),
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.GetFaq(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			ucLogger.Warn("FAQ not found", nil)
			return nil, err
		}
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return result, nil
}

type CreateFaqUseCase struct {
	storage port.ListingStoragePort
}

func NewCreateFaqUseCase(storage port.ListingStoragePort) *CreateFaqUseCase {
	return &CreateFaqUseCase{storage: storage}
}

func (uc *CreateFaqUseCase) Execute(ctx context.Context, input domain.NewFaq) (*domain.Faq, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateFaq",
		"category": string(input.Category),
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.CreateFaq(ctx, input)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"faq_id": result.ID.String()})
	return result, nil
}
