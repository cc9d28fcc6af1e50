package port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// ListingStoragePort - контракт хранилища каталога.
// Get-методы возвращают domain.ErrNotFound, если записи нет.
type ListingStoragePort interface {
	ListProperties(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	GetFeaturedProperties(ctx context.Context, limit int) ([]domain.Property, error)
	CreateProperty(ctx context.Context, input domain.NewProperty) (*domain.Property, error)

	ListAgencies(ctx context.Context) ([]domain.Agency, error)
	GetAgency(ctx context.Context, id uuid.UUID) (*domain.Agency, error)
	CreateAgency(ctx context.Context, input domain.NewAgency) (*domain.Agency, error)

	ListLocations(ctx context.Context) ([]domain.Location, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	CreateLocation(ctx context.Context, input domain.NewLocation) (*domain.Location, error)

	ListPropertyCategories(ctx context.Context) ([]domain.PropertyCategory, error)
	GetPropertyCategory(ctx context.Context, id uuid.UUID) (*domain.PropertyCategory, error)
	CreatePropertyCategory(ctx context.Context, input domain.NewPropertyCategory) (*domain.PropertyCategory, error)

	ListFaqs(ctx context.Context, category *domain.FaqCategory) ([]domain.Faq, error)
	GetFaq(ctx context.Context, id uuid.UUID) (*domain.Faq, error)
	CreateFaq(ctx context.Context, input domain.NewFaq) (*domain.Faq, error)

	GetStats(ctx context.Context) (*domain.Stats, error)
}
