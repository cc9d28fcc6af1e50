package postgres

import (
	"context"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// GetStats считает все четыре числа одним запросом, чтобы они были согласованы между собой
func (a *PostgresStorageAdapter) GetStats(ctx context.Context) (*domain.Stats, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "PostgresStorageAdapter", "method": "GetStats"})

	query := `
		SELECT
			(SELECT COUNT(*) FROM properties),
			(SELECT COUNT(*) FROM agencies),
			(SELECT COUNT(*) FROM locations),
			(SELECT COUNT(*) FROM properties WHERE is_featured = true)`

	var stats domain.Stats
	err := a.pool.QueryRow(ctx, query).Scan(
		&stats.TotalProperties, &stats.TotalAgencies, &stats.TotalLocations, &stats.FeaturedProperties,
	)
	if err != nil {
		logger.Error("Failed to count stats", err, nil)
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	logger.Debug("Stats counted", port.Fields{
		"total_properties":    stats.TotalProperties,
		"featured_properties": stats.FeaturedProperties,
	})
	return &stats, nil
}
