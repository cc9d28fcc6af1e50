package domain

import (
	"time"

	"github.com/google/uuid"
)

// PropertyCreatedEvent публикуется после успешного создания объявления
type PropertyCreatedEvent struct {
	PropertyID   uuid.UUID
	Title        string
	Price        string
	PriceType    PriceType
	PropertyType PropertyType
	IsFeatured   bool
	LocationID   *uuid.UUID
	AgencyID     *uuid.UUID
	CreatedAt    time.Time
}

func NewPropertyCreatedEvent(p *Property) PropertyCreatedEvent {
	return PropertyCreatedEvent{
		PropertyID:   p.ID,
		Title:        p.Title,
		Price:        p.Price,
		PriceType:    p.PriceType,
		PropertyType: p.PropertyType,
		IsFeatured:   p.IsFeatured,
		LocationID:   p.LocationID,
		AgencyID:     p.AgencyID,
		CreatedAt:    p.CreatedAt,
	}
}
