package postgres

import (
	"context"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const faqColumns = `id, question, answer, category, "order", is_active`

func scanFaq(row pgx.Row) (*domain.Faq, error) {
	var (
		f        domain.Faq
		category string
	)
	if err := row.Scan(&f.ID, &f.Question, &f.Answer, &category, &f.Order, &f.IsActive); err != nil {
		return nil, err
	}
	f.Category = domain.FaqCategory(category)
	return &f, nil
}

// ListFaqs возвращает только активные вопросы; category == nil означает "все категории"
func (a *PostgresStorageAdapter) ListFaqs(ctx context.Context, category *domain.FaqCategory) ([]domain.Faq, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "PostgresStorageAdapter", "method": "ListFaqs"})

	qb := newQueryBuilder()
	qb.addEquals("is_active", true)
	if category != nil {
		qb.addEquals("category", string(*category))
	}
	where, args := qb.build()

	query := fmt.Sprintf(`SELECT %s FROM faqs %s ORDER BY "order" ASC, question ASC`, faqColumns, where)
	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("Failed to query faqs", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	return collectRows(rows, scanFaq)
}

func (a *PostgresStorageAdapter) GetFaq(ctx context.Context, id uuid.UUID) (*domain.Faq, error) {
	return getByID(ctx, a.pool, "faqs", faqColumns, id, scanFaq)
}

func (a *PostgresStorageAdapter) CreateFaq(ctx context.Context, input domain.NewFaq) (*domain.Faq, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "PostgresStorageAdapter", "method": "CreateFaq"})

	query := `
		INSERT INTO faqs (id, question, answer, category, "order", is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + faqColumns

	faq, err := scanFaq(a.pool.QueryRow(ctx, query,
		uuid.New(), input.Question, input.Answer, string(input.Category), input.Order, input.IsActive))
	if err != nil {
		logger.Error("Failed to insert faq", err, pgErrorFields(err))
		return nil, fmt.Errorf("failed to insert faq: %w", err)
	}
	return faq, nil
}
