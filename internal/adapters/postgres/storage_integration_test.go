package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	pkgpostgres "listing-service/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Эти тесты ходят в настоящую базу и запускаются только при заданном TEST_DATABASE_URL.
// База очищается перед каждым тестом.

type silentLogger struct{}

func (silentLogger) Debug(string, port.Fields)        {}
func (silentLogger) Info(string, port.Fields)         {}
func (silentLogger) Warn(string, port.Fields)         {}
func (silentLogger) Error(string, error, port.Fields) {}
func (l silentLogger) WithFields(port.Fields) port.LoggerPort {
	return l
}

func newTestAdapter(t *testing.T) (*PostgresStorageAdapter, *pgxpool.Pool) {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pkgpostgres.NewClient(ctx, pkgpostgres.Config{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool, silentLogger{}))
	// повторный запуск ничего не должен делать
	require.NoError(t, Migrate(ctx, pool, silentLogger{}))

	_, err = pool.Exec(ctx, `TRUNCATE properties, agencies, locations, property_categories, faqs`)
	require.NoError(t, err)

	adapter, err := NewPostgresStorageAdapter(pool)
	require.NoError(t, err)
	return adapter, pool
}

func strPtr(s string) *string { return &s }

func TestStorageCreateAndGetProperty(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	location, err := adapter.CreateLocation(ctx, domain.NewLocation{Name: "Dubai Marina", Country: "UAE", City: strPtr("Dubai")})
	require.NoError(t, err)
	agency, err := adapter.CreateAgency(ctx, domain.NewAgency{Name: "Prime Homes"})
	require.NoError(t, err)
	assert.Equal(t, 0, agency.PropertyCount)

	furnished := domain.FurnishingStatusFurnished
	created, err := adapter.CreateProperty(ctx, domain.NewProperty{
		Title:            "Marina view apartment",
		Price:            "2500.50",
		PriceType:        domain.PriceTypeMonthly,
		PropertyType:     domain.PropertyTypeApartment,
		Bedrooms:         intPtr(2),
		Area:             strPtr("85.25"),
		FurnishingStatus: &furnished,
		Images:           []string{"https://img/1.jpg"},
		LocationID:       &location.ID,
		AgencyID:         &agency.ID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "2500.50", created.Price)
	assert.Equal(t, []string{}, created.Amenities)
	assert.False(t, created.IsFeatured)

	got, err := adapter.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	require.NotNil(t, got.Area)
	assert.Equal(t, "85.25", *got.Area)
	require.NotNil(t, got.FurnishingStatus)
	assert.Equal(t, furnished, *got.FurnishingStatus)
	assert.Equal(t, []string{"https://img/1.jpg"}, got.Images)

	gotLocation, err := adapter.GetLocation(ctx, location.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotLocation.PropertyCount)

	gotAgency, err := adapter.GetAgency(ctx, agency.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotAgency.PropertyCount)
}

func TestStorageGetMissingReturnsNotFound(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()
	id := uuid.New()

	_, err := adapter.GetProperty(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = adapter.GetAgency(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = adapter.GetLocation(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = adapter.GetPropertyCategory(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = adapter.GetFaq(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func seedProperties(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := []struct {
		title     string
		desc      string
		price     string
		ptype     string
		bedrooms  int
		featured  bool
		createdAt time.Time
	}{
		{"Old featured villa", "pool and garden", "900000", "villa", 5, true, base},
		{"New featured flat", "city centre", "1200", "apartment", 2, true, base.Add(48 * time.Hour)},
		{"Plain office", "open space, near VILLA district", "3000", "office", 0, false, base.Add(72 * time.Hour)},
		{"Corner shop", "busy street", "50000", "shop", 0, false, base.Add(24 * time.Hour)},
		{"Studio", "100% renovated", "700", "apartment", 1, false, base.Add(96 * time.Hour)},
	}
	for _, r := range rows {
		_, err := pool.Exec(ctx, `
			INSERT INTO properties (title, description, price, price_type, property_type, bedrooms, is_featured, created_at)
			VALUES ($1, $2, $3::text::numeric, 'sale', $4, $5, $6, $7)`,
			r.title, r.desc, r.price, r.ptype, r.bedrooms, r.featured, r.createdAt)
		require.NoError(t, err)
	}
}

func titles(properties []domain.Property) []string {
	result := make([]string, len(properties))
	for i, p := range properties {
		result[i] = p.Title
	}
	return result
}

func TestStorageListPropertiesOrderingAndPaging(t *testing.T) {
	adapter, pool := newTestAdapter(t)
	seedProperties(t, pool)
	ctx := context.Background()

	all, err := adapter.ListProperties(ctx, domain.PropertyFilters{})
	require.NoError(t, err)
	assert.Equal(t, []string{"New featured flat", "Old featured villa", "Studio", "Plain office", "Corner shop"}, titles(all))

	page, err := adapter.ListProperties(ctx, domain.PropertyFilters{Limit: intPtr(2), Offset: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, []string{"Old featured villa", "Studio"}, titles(page))

	empty, err := adapter.ListProperties(ctx, domain.PropertyFilters{Offset: intPtr(100)})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestStorageListPropertiesFilters(t *testing.T) {
	adapter, pool := newTestAdapter(t)
	seedProperties(t, pool)
	ctx := context.Background()

	search, err := adapter.ListProperties(ctx, domain.PropertyFilters{Search: "villa"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Old featured villa", "Plain office"}, titles(search))

	percent, err := adapter.ListProperties(ctx, domain.PropertyFilters{Search: "100%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Studio"}, titles(percent))

	priced, err := adapter.ListProperties(ctx, domain.PropertyFilters{MinPrice: floatPtr(1000), MaxPrice: floatPtr(50000)})
	require.NoError(t, err)
	assert.Equal(t, []string{"New featured flat", "Plain office", "Corner shop"}, titles(priced))

	bedrooms, err := adapter.ListProperties(ctx, domain.PropertyFilters{Bedrooms: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, []string{"New featured flat"}, titles(bedrooms))

	combined, err := adapter.ListProperties(ctx, domain.PropertyFilters{
		PropertyType: domain.PropertyTypeApartment,
		IsFeatured:   boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Studio"}, titles(combined))
}

func TestStorageFeaturedAndStats(t *testing.T) {
	adapter, pool := newTestAdapter(t)
	seedProperties(t, pool)
	ctx := context.Background()

	featured, err := adapter.GetFeaturedProperties(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"New featured flat"}, titles(featured))

	_, err = adapter.CreateAgency(ctx, domain.NewAgency{Name: "A"})
	require.NoError(t, err)
	_, err = adapter.CreateAgency(ctx, domain.NewAgency{Name: "B"})
	require.NoError(t, err)
	for _, name := range []string{"Downtown", "JLT", "Palm"} {
		_, err = adapter.CreateLocation(ctx, domain.NewLocation{Name: name, Country: "UAE"})
		require.NoError(t, err)
	}

	stats, err := adapter.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{TotalProperties: 5, TotalAgencies: 2, TotalLocations: 3, FeaturedProperties: 2}, *stats)
}

func TestStorageFaqsActiveAndOrdered(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	faqs := []domain.NewFaq{
		{Question: "Second", Answer: "a", Category: domain.FaqCategoryAgent, Order: 2, IsActive: true},
		{Question: "First", Answer: "a", Category: domain.FaqCategoryAgent, Order: 1, IsActive: true},
		{Question: "Hidden", Answer: "a", Category: domain.FaqCategoryAgent, Order: 0, IsActive: false},
		{Question: "Listing", Answer: "a", Category: domain.FaqCategoryListing, Order: 0, IsActive: true},
	}
	for _, f := range faqs {
		_, err := adapter.CreateFaq(ctx, f)
		require.NoError(t, err)
	}

	all, err := adapter.ListFaqs(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	agent := domain.FaqCategoryAgent
	agentFaqs, err := adapter.ListFaqs(ctx, &agent)
	require.NoError(t, err)
	require.Len(t, agentFaqs, 2)
	assert.Equal(t, "First", agentFaqs[0].Question)
	assert.Equal(t, "Second", agentFaqs[1].Question)
}

func TestStorageCategorySlugIsUnique(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	_, err := adapter.CreatePropertyCategory(ctx, domain.NewPropertyCategory{Name: "Villas", Slug: "villas"})
	require.NoError(t, err)
	_, err = adapter.CreatePropertyCategory(ctx, domain.NewPropertyCategory{Name: "Villas 2", Slug: "villas"})
	require.Error(t, err)

	categories, err := adapter.ListPropertyCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}
