package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location - город/район, к которому привязываются объявления
type Location struct {
	ID            uuid.UUID
	Name          string
	Country       string
	City          *string
	Area          *string
	PropertyCount int
}

type PropertyCategory struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Icon        *string
	Description *string
}

type Agency struct {
	ID            uuid.UUID
	Name          string
	Description   *string
	Logo          *string
	Phone         *string
	Email         *string
	Website       *string
	PropertyCount int
	CreatedAt     time.Time
}

// Property - объявление о недвижимости.
// Price и Area хранятся как NUMERIC и передаются строкой, чтобы не терять точность.
type Property struct {
	ID                 uuid.UUID
	Title              string
	Description        *string
	Price              string
	PriceType          PriceType
	PropertyType       PropertyType
	Bedrooms           *int
	Bathrooms          *int
	Area               *string
	FurnishingStatus   *FurnishingStatus
	AvailabilityStatus *AvailabilityStatus
	Images             []string
	Amenities          []string
	IsFeatured         bool
	IsNegotiable       bool

	LocationID *uuid.UUID
	CategoryID *uuid.UUID
	AgencyID   *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Faq struct {
	ID       uuid.UUID
	Question string
	Answer   string
	Category FaqCategory
	Order    int
	IsActive bool
}
