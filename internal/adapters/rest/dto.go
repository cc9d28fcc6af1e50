package rest

import (
	"time"

	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// --- ответы ---

type PropertyResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	Description        *string    `json:"description"`
	Price              string     `json:"price"`
	PriceType          string     `json:"priceType"`
	PropertyType       string     `json:"propertyType"`
	Bedrooms           *int       `json:"bedrooms"`
	Bathrooms          *int       `json:"bathrooms"`
	Area               *string    `json:"area"`
	FurnishingStatus   *string    `json:"furnishingStatus"`
	AvailabilityStatus *string    `json:"availabilityStatus"`
	Images             []string   `json:"images"`
	Amenities          []string   `json:"amenities"`
	IsFeatured         bool       `json:"isFeatured"`
	IsNegotiable       bool       `json:"isNegotiable"`
	LocationID         *uuid.UUID `json:"locationId"`
	CategoryID         *uuid.UUID `json:"categoryId"`
	AgencyID           *uuid.UUID `json:"agencyId"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type AgencyResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Logo          *string   `json:"logo"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	Website       *string   `json:"website"`
	PropertyCount int       `json:"propertyCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type LocationResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Country       string    `json:"country"`
	City          *string   `json:"city"`
	Area          *string   `json:"area"`
	PropertyCount int       `json:"propertyCount"`
}

type PropertyCategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Icon        *string   `json:"icon"`
	Description *string   `json:"description"`
}

type FaqResponse struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Category string    `json:"category"`
	Order    int       `json:"order"`
	IsActive bool      `json:"isActive"`
}

type StatsResponse struct {
	TotalProperties    int `json:"totalProperties"`
	TotalAgencies      int `json:"totalAgencies"`
	TotalLocations     int `json:"totalLocations"`
	FeaturedProperties int `json:"featuredProperties"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// --- запросы ---
// Тело уже проверено схемой, поэтому значения перечислений здесь допустимые.

type CreatePropertyRequest struct {
	Title              string     `json:"title"`
	Description        *string    `json:"description"`
	Price              string     `json:"price"`
	PriceType          string     `json:"priceType"`
	PropertyType       string     `json:"propertyType"`
	Bedrooms           *int       `json:"bedrooms"`
	Bathrooms          *int       `json:"bathrooms"`
	Area               *string    `json:"area"`
	FurnishingStatus   *string    `json:"furnishingStatus"`
	AvailabilityStatus *string    `json:"availabilityStatus"`
	Images             []string   `json:"images"`
	Amenities          []string   `json:"amenities"`
	IsFeatured         *bool      `json:"isFeatured"`
	IsNegotiable       *bool      `json:"isNegotiable"`
	LocationID         *uuid.UUID `json:"locationId"`
	CategoryID         *uuid.UUID `json:"categoryId"`
	AgencyID           *uuid.UUID `json:"agencyId"`
}

type CreateAgencyRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Website     *string `json:"website"`
}

type CreateLocationRequest struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	City    *string `json:"city"`
	Area    *string `json:"area"`
}

type CreatePropertyCategoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
}

type CreateFaqRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    *int   `json:"order"`
	IsActive *bool  `json:"isActive"`
}

type NewsletterSubscribeRequest struct {
	Email string `json:"email"`
}

// --- мапперы ---

func stringPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func enumPtr[T ~string](v *string) *T {
	if v == nil {
		return nil
	}
	t := T(*v)
	return &t
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return PropertyResponse{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		Price:              p.Price,
		PriceType:          string(p.PriceType),
		PropertyType:       string(p.PropertyType),
		Bedrooms:           p.Bedrooms,
		Bathrooms:          p.Bathrooms,
		Area:               p.Area,
		FurnishingStatus:   stringPtr(p.FurnishingStatus),
		AvailabilityStatus: stringPtr(p.AvailabilityStatus),
		Images:             images,
		Amenities:          amenities,
		IsFeatured:         p.IsFeatured,
		IsNegotiable:       p.IsNegotiable,
		LocationID:         p.LocationID,
		CategoryID:         p.CategoryID,
		AgencyID:           p.AgencyID,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (req CreatePropertyRequest) toDomain() domain.NewProperty {
	return domain.NewProperty{
		Title:              req.Title,
		Description:        req.Description,
		Price:              req.Price,
		PriceType:          domain.PriceType(req.PriceType),
		PropertyType:       domain.PropertyType(req.PropertyType),
		Bedrooms:           req.Bedrooms,
		Bathrooms:          req.Bathrooms,
		Area:               req.Area,
		FurnishingStatus:   enumPtr[domain.FurnishingStatus](req.FurnishingStatus),
		AvailabilityStatus: enumPtr[domain.AvailabilityStatus](req.AvailabilityStatus),
		Images:             req.Images,
		Amenities:          req.Amenities,
		IsFeatured:         boolOr(req.IsFeatured, false),
		IsNegotiable:       boolOr(req.IsNegotiable, false),
		LocationID:         req.LocationID,
		CategoryID:         req.CategoryID,
		AgencyID:           req.AgencyID,
	}
}

func toAgencyResponse(a domain.Agency) AgencyResponse {
	return AgencyResponse{
		ID:            a.ID,
		Name:          a.Name,
		Description:   a.Description,
		Logo:          a.Logo,
		Phone:         a.Phone,
		Email:         a.Email,
		Website:       a.Website,
		PropertyCount: a.PropertyCount,
		CreatedAt:     a.CreatedAt,
	}
}

func (req CreateAgencyRequest) toDomain() domain.NewAgency {
	return domain.NewAgency{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
	}
}

func toLocationResponse(l domain.Location) LocationResponse {
	return LocationResponse{
		ID:            l.ID,
		Name:          l.Name,
		Country:       l.Country,
		City:          l.City,
		Area:          l.Area,
		PropertyCount: l.PropertyCount,
	}
}

func (req CreateLocationRequest) toDomain() domain.NewLocation {
	return domain.NewLocation{Name: req.Name, Country: req.Country, City: req.City, Area: req.Area}
}

func toPropertyCategoryResponse(c domain.PropertyCategory) PropertyCategoryResponse {
	return PropertyCategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Icon:        c.Icon,
		Description: c.Description,
	}
}

func (req CreatePropertyCategoryRequest) toDomain() domain.NewPropertyCategory {
	return domain.NewPropertyCategory{Name: req.Name, Slug: req.Slug, Icon: req.Icon, Description: req.Description}
}

func toFaqResponse(f domain.Faq) FaqResponse {
	return FaqResponse{
		ID:       f.ID,
		Question: f.Question,
		Answer:   f.Answer,
		Category: string(f.Category),
		Order:    f.Order,
		IsActive: f.IsActive,
	}
}

func (req CreateFaqRequest) toDomain() domain.NewFaq {
	order := 0
	if req.Order != nil {
		order = *req.Order
	}
	return domain.NewFaq{
		Question: req.Question,
		Answer:   req.Answer,
		Category: domain.FaqCategory(req.Category),
		Order:    order,
		IsActive: boolOr(req.IsActive, true),
	}
}

func mapSlice[T any, R any](items []T, fn func(T) R) []R {
	result := make([]R, len(items))
	for i, item := range items {
		result[i] = fn(item)
	}
	return result
}
