package postgres

import (
	"context"
	"errors"
	"fmt"
	"listing-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// dbExecutor - общий интерфейс для пула и транзакции
type dbExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStorageAdapter реализует ListingStoragePort для PostgreSQL.
type PostgresStorageAdapter struct {
	pool *pgxpool.Pool
}

// NewPostgresStorageAdapter создает новый экземпляр адаптера.
func NewPostgresStorageAdapter(pool *pgxpool.Pool) (*PostgresStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresStorageAdapter{
		pool: pool,
	}, nil
}

// Ping используется health-check'ом
func (a *PostgresStorageAdapter) Ping(ctx context.Context) error {
	return a.pool.Ping(ctx)
}

// pgErrorFields достает код и constraint из ошибки PostgreSQL для логов.
// Клиенту эти подробности не отдаются.
func pgErrorFields(err error) port.Fields {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return port.Fields{
			"pg_code":       pgErr.Code,
			"pg_constraint": pgErr.ConstraintName,
		}
	}
	return nil
}
