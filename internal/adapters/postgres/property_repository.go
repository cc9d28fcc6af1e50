package postgres

import (
	"context"
	"errors"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// NUMERIC отдаем текстом, чтобы не терять копейки на float64
const propertyColumns = `id, title, description, price::text, price_type, property_type, bedrooms, bathrooms,
	area::text, furnishing_status, availability_status, images, amenities, is_featured, is_negotiable,
	location_id, category_id, agency_id, created_at, updated_at`

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var (
		p                  domain.Property
		priceType          string
		propertyType       string
		furnishingStatus   *string
		availabilityStatus *string
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &priceType, &propertyType, &p.Bedrooms, &p.Bathrooms,
		&p.Area, &furnishingStatus, &availabilityStatus, &p.Images, &p.Amenities, &p.IsFeatured, &p.IsNegotiable,
		&p.LocationID, &p.CategoryID, &p.AgencyID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.PriceType = domain.PriceType(priceType)
	p.PropertyType = domain.PropertyType(propertyType)
	if furnishingStatus != nil {
		fs := domain.FurnishingStatus(*furnishingStatus)
		p.FurnishingStatus = &fs
	}
	if availabilityStatus != nil {
		as := domain.AvailabilityStatus(*availabilityStatus)
		p.AvailabilityStatus = &as
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}

	return &p, nil
}

func collectProperties(rows pgx.Rows) ([]domain.Property, error) {
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during properties rows iteration: %w", err)
	}
	return properties, nil
}

// ListProperties ищет объявления по фильтрам; сортировка всегда "сначала избранные, потом новые"
func (a *PostgresStorageAdapter) ListProperties(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresStorageAdapter",
		"method":    "ListProperties",
	})

	query, args := buildListPropertiesQuery(filters)
	repoLogger.Debug("Executing properties query", port.Fields{"query": query, "args_count": len(args)})

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	properties, err := collectProperties(rows)
	if err != nil {
		repoLogger.Error("Failed to read properties", err, nil)
		return nil, err
	}

	repoLogger.Info("Successfully listed properties", port.Fields{"count": len(properties)})
	return properties, nil
}

func (a *PostgresStorageAdapter) GetProperty(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresStorageAdapter",
		"method":      "GetProperty",
		"property_id": id,
	})

	query := "SELECT " + propertyColumns + " FROM properties WHERE id = $1"
	p, err := scanProperty(a.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Property not found", nil)
			return nil, domain.ErrNotFound
		}
		repoLogger.Error("Failed to get property", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return p, nil
}

func (a *PostgresStorageAdapter) GetFeaturedProperties(ctx context.Context, limit int) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresStorageAdapter",
		"method":    "GetFeaturedProperties",
		"limit":     limit,
	})

	query := "SELECT " + propertyColumns + ` FROM properties
		WHERE is_featured = true
		ORDER BY created_at DESC, id ASC
		LIMIT $1`

	rows, err := a.pool.Query(ctx, query, limit)
	if err != nil {
		repoLogger.Error("Failed to query featured properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to get featured properties: %w", err)
	}

	properties, err := collectProperties(rows)
	if err != nil {
		repoLogger.Error("Failed to read featured properties", err, nil)
		return nil, err
	}

	repoLogger.Info("Successfully found featured properties", port.Fields{"count": len(properties)})
	return properties, nil
}

// CreateProperty вставляет объявление и в той же транзакции увеличивает property_count
// у связанных локации и агентства.
func (a *PostgresStorageAdapter) CreateProperty(ctx context.Context, input domain.NewProperty) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresStorageAdapter",
		"method":    "CreateProperty",
	})

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	property, err := insertProperty(ctx, tx, input)
	if err != nil {
		repoLogger.Error("Failed to insert property", err, pgErrorFields(err))
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}

	if input.LocationID != nil {
		if _, err := tx.Exec(ctx, `UPDATE locations SET property_count = property_count + 1 WHERE id = $1`, *input.LocationID); err != nil {
			repoLogger.Error("Failed to increment location property count", err, nil)
			return nil, fmt.Errorf("failed to update location property count: %w", err)
		}
	}
	if input.AgencyID != nil {
		if _, err := tx.Exec(ctx, `UPDATE agencies SET property_count = property_count + 1 WHERE id = $1`, *input.AgencyID); err != nil {
			repoLogger.Error("Failed to increment agency property count", err, nil)
			return nil, fmt.Errorf("failed to update agency property count: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Info("Property created", port.Fields{"property_id": property.ID})
	return property, nil
}

func insertProperty(ctx context.Context, db dbExecutor, input domain.NewProperty) (*domain.Property, error) {
	var furnishingStatus, availabilityStatus *string
	if input.FurnishingStatus != nil {
		s := string(*input.FurnishingStatus)
		furnishingStatus = &s
	}
	if input.AvailabilityStatus != nil {
		s := string(*input.AvailabilityStatus)
		availabilityStatus = &s
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}
	amenities := input.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	query := `
		INSERT INTO properties (
			id, title, description, price, price_type, property_type, bedrooms, bathrooms,
			area, furnishing_status, availability_status, images, amenities, is_featured, is_negotiable,
			location_id, category_id, agency_id
		) VALUES (
			$1, $2, $3, $4::text::numeric, $5, $6, $7, $8,
			$9::text::numeric, $10, $11, $12, $13, $14, $15,
			$16, $17, $18
		)
		RETURNING ` + propertyColumns

	return scanProperty(db.QueryRow(ctx, query,
		uuid.New(), input.Title, input.Description, input.Price, string(input.PriceType), string(input.PropertyType),
		input.Bedrooms, input.Bathrooms,
		input.Area, furnishingStatus, availabilityStatus, images, amenities, input.IsFeatured, input.IsNegotiable,
		input.LocationID, input.CategoryID, input.AgencyID,
	))
}
