package postgres

import (
	"context"
	"crypto/sha256"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"listing-service/internal/core/port"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrMigrationChanged - уже примененный файл миграции изменился после применения
var ErrMigrationChanged = errors.New("applied migration was modified")

type migration struct {
	name    string
	content string
}

// Migrate применяет встроенные в бинарник миграции, которых еще нет в schema_migrations.
// Каждый файл выполняется в своей транзакции вместе с записью о нем.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger port.LoggerPort) error {
	migrateLogger := logger.WithFields(port.Fields{"component": "Migrator"})

	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id SERIAL PRIMARY KEY,
			filename TEXT NOT NULL UNIQUE,
			checksum TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	applied, err := appliedMigrations(ctx, pool)
	if err != nil {
		return err
	}

	all, err := loadMigrations()
	if err != nil {
		return err
	}

	pending, err := pendingMigrations(all, applied)
	if err != nil {
		migrateLogger.Error("Migration history check failed", err, nil)
		return err
	}

	for _, m := range pending {
		start := time.Now()
		if err := applyMigration(ctx, pool, m.name, m.content); err != nil {
			migrateLogger.Error("Migration failed", err, port.Fields{"migration": m.name})
			return err
		}
		migrateLogger.Info("Migration applied", port.Fields{
			"migration":   m.name,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}

	return nil
}

func appliedMigrations(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	rows, err := pool.Query(ctx, `SELECT filename, checksum FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]string)
	for rows.Next() {
		var name, checksum string
		if err := rows.Scan(&name, &checksum); err != nil {
			return nil, fmt.Errorf("scan applied migration: %w", err)
		}
		applied[name] = checksum
	}
	return applied, rows.Err()
}

// loadMigrations читает встроенные .sql файлы в порядке имен
func loadMigrations() ([]migration, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(migrationsFS, "migrations/"+name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		migrations = append(migrations, migration{name: name, content: string(content)})
	}
	return migrations, nil
}

// pendingMigrations отбрасывает примененные файлы; расхождение checksum с записанным - ошибка
func pendingMigrations(all []migration, applied map[string]string) ([]migration, error) {
	var pending []migration
	for _, m := range all {
		recorded, ok := applied[m.name]
		if !ok {
			pending = append(pending, m)
			continue
		}
		if recorded != checksum(m.content) {
			return nil, fmt.Errorf("%w: %s", ErrMigrationChanged, m.name)
		}
	}
	return pending, nil
}

func applyMigration(ctx context.Context, pool *pgxpool.Pool, name, content string) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", name, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, content); err != nil {
		return fmt.Errorf("execute migration %s: %w", name, err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO schema_migrations (filename, checksum) VALUES ($1, $2)`,
		name, checksum(content),
	); err != nil {
		return fmt.Errorf("record migration %s: %w", name, err)
	}

	return tx.Commit(ctx)
}

func checksum(content string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(content)))
}
