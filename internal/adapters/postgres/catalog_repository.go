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

const (
	agencyColumns   = "id, name, description, logo, phone, email, website, property_count, created_at"
	locationColumns = "id, name, country, city, area, property_count"
	categoryColumns = "id, name, slug, icon, description"
)

func scanAgency(row pgx.Row) (*domain.Agency, error) {
	var a domain.Agency
	if err := row.Scan(&a.ID, &a.Name, &a.Description, &a.Logo, &a.Phone, &a.Email, &a.Website, &a.PropertyCount, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanLocation(row pgx.Row) (*domain.Location, error) {
	var l domain.Location
	if err := row.Scan(&l.ID, &l.Name, &l.Country, &l.City, &l.Area, &l.PropertyCount); err != nil {
		return nil, err
	}
	return &l, nil
}

func scanCategory(row pgx.Row) (*domain.PropertyCategory, error) {
	var c domain.PropertyCategory
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Icon, &c.Description); err != nil {
		return nil, err
	}
	return &c, nil
}

// collectRows читает все строки через переданный сканер
func collectRows[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return result, nil
}

// getByID - общий SELECT по первичному ключу. pgx.ErrNoRows превращается в domain.ErrNotFound.
func getByID[T any](ctx context.Context, db dbExecutor, table, columns string, id uuid.UUID, scan func(pgx.Row) (*T, error)) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", columns, table)
	item, err := scan(db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get from %s: %w", table, err)
	}
	return item, nil
}

func (a *PostgresStorageAdapter) ListAgencies(ctx context.Context) ([]domain.Agency, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "PostgresStorageAdapter", "method": "ListAgencies"})

	rows, err := a.pool.Query(ctx, "SELECT "+agencyColumns+" FROM agencies ORDER BY property_count DESC, name ASC")
	if err != nil {
		logger.Error("Failed to query agencies", err, nil)
		return nil, fmt.Errorf("failed to list agencies: %w", err)
	}
	return collectRows(rows, scanAgency)
}

func (a *PostgresStorageAdapter) GetAgency(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
	return getByID(ctx, a.pool, "agencies", agencyColumns, id, scanAgency)
}

func (a *PostgresStorageAdapter) CreateAgency(ctx context.Context, input domain.NewAgency) (*domain.Agency, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "PostgresStorageAdapter", "method": "CreateAgency"})

	query := `
		INSERT INTO agencies (id, name, description, logo, phone, email, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + agencyColumns

	agency, err := scanAgency(a.pool.QueryRow(ctx, query,
		uuid.New(), input.Name, input.Description, input.Logo, input.Phone, input.Email, input.Website))
	if err != nil {
		logger.Error("Failed to insert agency", err, pgErrorFields(err))
		return nil, fmt.Errorf("failed to insert agency: %w", err)
	}
	return agency, nil
}

func (a *PostgresStorageAdapter) ListLocations(ctx context.Context) ([]domain.Location, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "PostgresStorageAdapter", "method": "ListLocations"})

	rows, err := a.pool.Query(ctx, "SELECT "+locationColumns+" FROM locations ORDER BY name ASC, id ASC")
	if err != nil {
		logger.Error("Failed to query locations", err, nil)
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return collectRows(rows, scanLocation)
}

func (a *PostgresStorageAdapter) GetLocation(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	return getByID(ctx, a.pool, "locations", locationColumns, id, scanLocation)
}

func (a *PostgresStorageAdapter) CreateLocation(ctx context.Context, input domain.NewLocation) (*domain.Location, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "PostgresStorageAdapter", "method": "CreateLocation"})

	query := `
		INSERT INTO locations (id, name, country, city, area)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + locationColumns

	location, err := scanLocation(a.pool.QueryRow(ctx, query, uuid.New(), input.Name, input.Country, input.City, input.Area))
	if err != nil {
		logger.Error("Failed to insert location", err, pgErrorFields(err))
		return nil, fmt.Errorf("failed to insert location: %w", err)
	}
	return location, nil
}

func (a *PostgresStorageAdapter) ListPropertyCategories(ctx context.Context) ([]domain.PropertyCategory, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "PostgresStorageAdapter", "method": "ListPropertyCategories"})

	rows, err := a.pool.Query(ctx, "SELECT "+categoryColumns+" FROM property_categories ORDER BY name ASC, id ASC")
	if err != nil {
		logger.Error("Failed to query property categories", err, nil)
		return nil, fmt.Errorf("failed to list property categories: %w", err)
	}
	return collectRows(rows, scanCategory)
}

func (a *PostgresStorageAdapter) GetPropertyCategory(ctx context.Context, id uuid.UUID) (*domain.PropertyCategory, error) {
	return getByID(ctx, a.pool, "property_categories", categoryColumns, id, scanCategory)
}

func (a *PostgresStorageAdapter) CreatePropertyCategory(ctx context.Context, input domain.NewPropertyCategory) (*domain.PropertyCategory, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "PostgresStorageAdapter", "method": "CreatePropertyCategory"})

	query := `
		INSERT INTO property_categories (id, name, slug, icon, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + categoryColumns

	category, err := scanCategory(a.pool.QueryRow(ctx, query, uuid.New(), input.Name, input.Slug, input.Icon, input.Description))
	if err != nil {
		logger.Error("Failed to insert property category", err, pgErrorFields(err))
		return nil, fmt.Errorf("failed to insert property category: %w", err)
	}
	return category, nil
}
