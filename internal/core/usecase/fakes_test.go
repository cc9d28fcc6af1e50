package usecase

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// fakeStorage реализует port.ListingStoragePort в памяти для тестов use case
type fakeStorage struct {
	properties []domain.Property
	created    []domain.NewProperty
	lastLimit  int
	lastFaqCat *domain.FaqCategory
	stats      domain.Stats
	err        error
}

func (f *fakeStorage) ListProperties(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	return f.properties, f.err
}

func (f *fakeStorage) GetProperty(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.properties {
		if f.properties[i].ID == id {
			return &f.properties[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStorage) GetFeaturedProperties(ctx context.Context, limit int) ([]domain.Property, error) {
	f.lastLimit = limit
	return f.properties, f.err
}

func (f *fakeStorage) CreateProperty(ctx context.Context, input domain.NewProperty) (*domain.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, input)
	p := domain.Property{
		ID:           uuid.New(),
		Title:        input.Title,
		Price:        input.Price,
		PriceType:    input.PriceType,
		PropertyType: input.PropertyType,
		Images:       input.Images,
		Amenities:    input.Amenities,
		IsFeatured:   input.IsFeatured,
	}
	f.properties = append(f.properties, p)
	return &p, nil
}

func (f *fakeStorage) ListAgencies(ctx context.Context) ([]domain.Agency, error) {
	return nil, f.err
}

func (f *fakeStorage) GetAgency(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeStorage) CreateAgency(ctx context.Context, input domain.NewAgency) (*domain.Agency, error) {
	return &domain.Agency{ID: uuid.New(), Name: input.Name}, f.err
}

func (f *fakeStorage) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return nil, f.err
}

func (f *fakeStorage) GetLocation(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeStorage) CreateLocation(ctx context.Context, input domain.NewLocation) (*domain.Location, error) {
	return &domain.Location{ID: uuid.New(), Name: input.Name, Country: input.Country}, f.err
}

func (f *fakeStorage) ListPropertyCategories(ctx context.Context) ([]domain.PropertyCategory, error) {
	return nil, f.err
}

func (f *fakeStorage) GetPropertyCategory(ctx context.Context, id uuid.UUID) (*domain.PropertyCategory, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeStorage) CreatePropertyCategory(ctx context.Context, input domain.NewPropertyCategory) (*domain.PropertyCategory, error) {
	return &domain.PropertyCategory{ID: uuid.New(), Name: input.Name, Slug: input.Slug}, f.err
}

func (f *fakeStorage) ListFaqs(ctx context.Context, category *domain.FaqCategory) ([]domain.Faq, error) {
	f.lastFaqCat = category
	return []domain.Faq{}, f.err
}

func (f *fakeStorage) GetFaq(ctx context.Context, id uuid.UUID) (*domain.Faq, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeStorage) CreateFaq(ctx context.Context, input domain.NewFaq) (*domain.Faq, error) {
	return &domain.Faq{ID: uuid.New(), Question: input.Question}, f.err
}

func (f *fakeStorage) GetStats(ctx context.Context) (*domain.Stats, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := f.stats
	return &s, nil
}

type fakeEvents struct {
	published []domain.PropertyCreatedEvent
	err       error
}

func (f *fakeEvents) PublishPropertyCreated(ctx context.Context, event domain.PropertyCreatedEvent) error {
	f.published = append(f.published, event)
	return f.err
}
