package domain

import "github.com/google/uuid"

// PropertyFilters - все фильтры каталога. nil или пустая строка означают "фильтр не задан".
// Все заданные фильтры объединяются через AND.
type PropertyFilters struct {
	LocationID       *uuid.UUID
	CategoryID       *uuid.UUID
	AgencyID         *uuid.UUID
	PropertyType     PropertyType
	MinPrice         *float64
	MaxPrice         *float64
	Bedrooms         *int // точное совпадение, не "от N"
	Bathrooms        *int
	FurnishingStatus FurnishingStatus
	IsFeatured       *bool
	Search           string // подстрока в title ИЛИ description, без учета регистра

	Limit  *int
	Offset *int
}

// Stats - агрегаты для главной страницы
type Stats struct {
	TotalProperties    int
	TotalAgencies      int
	TotalLocations     int
	FeaturedProperties int
}
