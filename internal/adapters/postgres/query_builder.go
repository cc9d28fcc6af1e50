package postgres

import (
	"fmt"
	"listing-service/internal/core/domain"
	"strings"
)

type operator string

const (
	opEq       operator = "="
	opGte      operator = ">="
	opLte      operator = "<="
	opILikeAny operator = "ILIKE ANY"
)

// predicate - одно условие WHERE. Значение всегда уходит в запрос параметром.
// Для opILikeAny используется columns: условие истинно, если совпала хотя бы одна колонка.
type predicate struct {
	column  string
	op      operator
	value   interface{}
	columns []string
}

type queryBuilder struct {
	predicates []predicate
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{predicates: make([]predicate, 0)}
}

func (qb *queryBuilder) addEquals(column string, value interface{}) {
	qb.predicates = append(qb.predicates, predicate{column: column, op: opEq, value: value})
}

func (qb *queryBuilder) addRange(column string, min *float64, max *float64) {
	if min != nil {
		qb.predicates = append(qb.predicates, predicate{column: column, op: opGte, value: *min})
	}
	if max != nil {
		qb.predicates = append(qb.predicates, predicate{column: column, op: opLte, value: *max})
	}
}

// addSearch добавляет регистронезависимый поиск подстроки сразу по нескольким колонкам
func (qb *queryBuilder) addSearch(term string, columns ...string) {
	qb.predicates = append(qb.predicates, predicate{
		op:      opILikeAny,
		value:   "%" + escapeLike(term) + "%",
		columns: columns,
	})
}

// build возвращает WHERE (или пустую строку) и аргументы, нумерация с $1
func (qb *queryBuilder) build() (string, []interface{}) {
	if len(qb.predicates) == 0 {
		return "", []interface{}{}
	}

	conditions := make([]string, 0, len(qb.predicates))
	args := make([]interface{}, 0, len(qb.predicates))

	for _, p := range qb.predicates {
		args = append(args, p.value)
		argID := len(args)

		switch p.op {
		case opILikeAny:
			alternatives := make([]string, len(p.columns))
			for i, column := range p.columns {
				alternatives[i] = fmt.Sprintf(`%s ILIKE $%d ESCAPE '\'`, column, argID)
			}
			conditions = append(conditions, "("+strings.Join(alternatives, " OR ")+")")
		default:
			conditions = append(conditions, fmt.Sprintf("%s %s $%d", p.column, p.op, argID))
		}
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// applyPropertyFilters разбирает фильтры каталога в набор условий
func applyPropertyFilters(filters domain.PropertyFilters) *queryBuilder {
	qb := newQueryBuilder()

	if filters.LocationID != nil {
		qb.addEquals("location_id", *filters.LocationID)
	}
	if filters.CategoryID != nil {
		qb.addEquals("category_id", *filters.CategoryID)
	}
	if filters.AgencyID != nil {
		qb.addEquals("agency_id", *filters.AgencyID)
	}
	if filters.PropertyType != "" {
		qb.addEquals("property_type", string(filters.PropertyType))
	}

	qb.addRange("price", filters.MinPrice, filters.MaxPrice)

	// Спальни и санузлы - точное совпадение
	if filters.Bedrooms != nil {
		qb.addEquals("bedrooms", *filters.Bedrooms)
	}
	if filters.Bathrooms != nil {
		qb.addEquals("bathrooms", *filters.Bathrooms)
	}
	if filters.FurnishingStatus != "" {
		qb.addEquals("furnishing_status", string(filters.FurnishingStatus))
	}
	if filters.IsFeatured != nil {
		qb.addEquals("is_featured", *filters.IsFeatured)
	}
	if filters.Search != "" {
		qb.addSearch(filters.Search, "title", "description")
	}

	return qb
}

const propertyOrderBy = "ORDER BY is_featured DESC, created_at DESC, id ASC"

// buildListPropertiesQuery собирает итоговый SELECT с сортировкой и пагинацией
func buildListPropertiesQuery(filters domain.PropertyFilters) (string, []interface{}) {
	whereClause, args := applyPropertyFilters(filters).build()

	var query strings.Builder
	query.WriteString("SELECT ")
	query.WriteString(propertyColumns)
	query.WriteString(" FROM properties")
	if whereClause != "" {
		query.WriteString(" ")
		query.WriteString(whereClause)
	}
	query.WriteString(" ")
	query.WriteString(propertyOrderBy)

	if filters.Limit != nil {
		args = append(args, *filters.Limit)
		query.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}
	if filters.Offset != nil {
		args = append(args, *filters.Offset)
		query.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	}

	return query.String(), args
}
