package domain

import "github.com/google/uuid"

// Структуры ниже содержат только поля, которые клиент может передать при создании.
// id, временные метки и денормализованные счетчики заполняет сервер.

type NewLocation struct {
	Name    string
	Country string
	City    *string
	Area    *string
}

type NewPropertyCategory struct {
	Name        string
	Slug        string
	Icon        *string
	Description *string
}

type NewAgency struct {
	Name        string
	Description *string
	Logo        *string
	Phone       *string
	Email       *string
	Website     *string
}

type NewProperty struct {
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
}

type NewFaq struct {
	Question string
	Answer   string
	Category FaqCategory
	Order    int
	IsActive bool
}
