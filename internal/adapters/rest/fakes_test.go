package rest

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"

	"github.com/google/uuid"
)

// memStore - хранилище в памяти, чтобы гонять роутер вместе с настоящими use case'ами
type memStore struct {
	mu          sync.Mutex
	properties  []domain.Property
	agencies    []domain.Agency
	locations   []domain.Location
	categories  []domain.PropertyCategory
	faqs        []domain.Faq
	lastFilters domain.PropertyFilters
	lastLimit   int
	lastFaqCat  *domain.FaqCategory
	err         error
}

func (m *memStore) ListProperties(_ context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFilters = filters
	if m.err != nil {
		return nil, m.err
	}
	result := append([]domain.Property(nil), m.properties...)
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].IsFeatured != result[j].IsFeatured {
			return result[i].IsFeatured
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *memStore) GetProperty(_ context.Context, id uuid.UUID) (*domain.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.properties {
		if m.properties[i].ID == id {
			p := m.properties[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) GetFeaturedProperties(_ context.Context, limit int) ([]domain.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	result := make([]domain.Property, 0)
	for _, p := range m.properties {
		if p.IsFeatured && len(result) < limit {
			result = append(result, p)
		}
	}
	return result, m.err
}

func (m *memStore) CreateProperty(_ context.Context, in domain.NewProperty) (*domain.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	now := time.Now().UTC()
	p := domain.Property{
		ID:                 uuid.New(),
		Title:              in.Title,
		Description:        in.Description,
		Price:              in.Price,
		PriceType:          in.PriceType,
		PropertyType:       in.PropertyType,
		Bedrooms:           in.Bedrooms,
		Bathrooms:          in.Bathrooms,
		Area:               in.Area,
		FurnishingStatus:   in.FurnishingStatus,
		AvailabilityStatus: in.AvailabilityStatus,
		Images:             in.Images,
		Amenities:          in.Amenities,
		IsFeatured:         in.IsFeatured,
		IsNegotiable:       in.IsNegotiable,
		LocationID:         in.LocationID,
		CategoryID:         in.CategoryID,
		AgencyID:           in.AgencyID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	m.properties = append(m.properties, p)
	return &p, nil
}

func (m *memStore) ListAgencies(context.Context) ([]domain.Agency, error) {
	return m.agencies, m.err
}

func (m *memStore) GetAgency(_ context.Context, id uuid.UUID) (*domain.Agency, error) {
	for i := range m.agencies {
		if m.agencies[i].ID == id {
			return &m.agencies[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) CreateAgency(_ context.Context, in domain.NewAgency) (*domain.Agency, error) {
	a := domain.Agency{ID: uuid.New(), Name: in.Name, Email: in.Email, CreatedAt: time.Now().UTC()}
	m.agencies = append(m.agencies, a)
	return &a, nil
}

func (m *memStore) ListLocations(context.Context) ([]domain.Location, error) {
	return m.locations, m.err
}

func (m *memStore) GetLocation(_ context.Context, id uuid.UUID) (*domain.Location, error) {
	for i := range m.locations {
		if m.locations[i].ID == id {
			return &m.locations[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) CreateLocation(_ context.Context, in domain.NewLocation) (*domain.Location, error) {
	l := domain.Location{ID: uuid.New(), Name: in.Name, Country: in.Country, City: in.City, Area: in.Area}
	m.locations = append(m.locations, l)
	return &l, nil
}

func (m *memStore) ListPropertyCategories(context.Context) ([]domain.PropertyCategory, error) {
	return m.categories, m.err
}

func (m *memStore) GetPropertyCategory(_ context.Context, id uuid.UUID) (*domain.PropertyCategory, error) {
	for i := range m.categories {
		if m.categories[i].ID == id {
			return &m.categories[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) CreatePropertyCategory(_ context.Context, in domain.NewPropertyCategory) (*domain.PropertyCategory, error) {
	c := domain.PropertyCategory{ID: uuid.New(), Name: in.Name, Slug: in.Slug, Icon: in.Icon, Description: in.Description}
	m.categories = append(m.categories, c)
	return &c, nil
}

func (m *memStore) ListFaqs(_ context.Context, category *domain.FaqCategory) ([]domain.Faq, error) {
	m.lastFaqCat = category
	result := make([]domain.Faq, 0)
	for _, f := range m.faqs {
		if f.IsActive && (category == nil || f.Category == *category) {
			result = append(result, f)
		}
	}
	return result, m.err
}

func (m *memStore) GetFaq(_ context.Context, id uuid.UUID) (*domain.Faq, error) {
	for i := range m.faqs {
		if m.faqs[i].ID == id {
			return &m.faqs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) CreateFaq(_ context.Context, in domain.NewFaq) (*domain.Faq, error) {
	f := domain.Faq{ID: uuid.New(), Question: in.Question, Answer: in.Answer, Category: in.Category, Order: in.Order, IsActive: in.IsActive}
	m.faqs = append(m.faqs, f)
	return &f, nil
}

func (m *memStore) GetStats(context.Context) (*domain.Stats, error) {
	if m.err != nil {
		return nil, m.err
	}
	featured := 0
	for _, p := range m.properties {
		if p.IsFeatured {
			featured++
		}
	}
	return &domain.Stats{
		TotalProperties:    len(m.properties),
		TotalAgencies:      len(m.agencies),
		TotalLocations:     len(m.locations),
		FeaturedProperties: featured,
	}, nil
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type silentLogger struct{}

func (silentLogger) Debug(string, port.Fields)                {}
func (silentLogger) Info(string, port.Fields)                 {}
func (silentLogger) Warn(string, port.Fields)                 {}
func (silentLogger) Error(string, error, port.Fields)         {}
func (s silentLogger) WithFields(port.Fields) port.LoggerPort { return s }

func newTestRouter(store *memStore, health HealthChecker) http.Handler {
	handlers := Handlers{
		Properties: NewPropertyHandler(
			usecase.NewListPropertiesUseCase(store),
			usecase.NewGetPropertyUseCase(store),
			usecase.NewGetFeaturedPropertiesUseCase(store, usecase.DefaultFeaturedLimit),
			usecase.NewCreatePropertyUseCase(store, nil),
		),
		Catalog: NewCatalogHandler(CatalogUseCases{
			ListAgencies:   usecase.NewListAgenciesUseCase(store),
			GetAgency:      usecase.NewGetAgencyUseCase(store),
			CreateAgency:   usecase.NewCreateAgencyUseCase(store),
			ListLocations:  usecase.NewListLocationsUseCase(store),
			GetLocation:    usecase.NewGetLocationUseCase(store),
			CreateLocation: usecase.NewCreateLocationUseCase(store),
			ListCategories: usecase.NewListPropertyCategoriesUseCase(store),
			GetCategory:    usecase.NewGetPropertyCategoryUseCase(store),
			CreateCategory: usecase.NewCreatePropertyCategoryUseCase(store),
		}),
		Site: NewSiteHandler(
			usecase.NewListFaqsUseCase(store),
			usecase.NewGetFaqUseCase(store),
			usecase.NewCreateFaqUseCase(store),
			usecase.NewGetStatsUseCase(store),
			usecase.NewSubscribeNewsletterUseCase(),
		),
	}
	return NewRouter(ServerConfig{Port: "0", ServiceName: "listing-service-test"}, handlers, health, silentLogger{})
}
