package rest

import (
	"net/http"

	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
)

type PropertyHandler struct {
	listUC     usecases_port.ListPropertiesUseCase
	getUC      usecases_port.GetPropertyUseCase
	featuredUC usecases_port.GetFeaturedPropertiesUseCase
	createUC   usecases_port.CreatePropertyUseCase
}

func NewPropertyHandler(
	listUC usecases_port.ListPropertiesUseCase,
	getUC usecases_port.GetPropertyUseCase,
	featuredUC usecases_port.GetFeaturedPropertiesUseCase,
	createUC usecases_port.CreatePropertyUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		listUC:     listUC,
		getUC:      getUC,
		featuredUC: featuredUC,
		createUC:   createUC,
	}
}

// ListProperties обрабатывает GET /api/properties
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r.URL.Query())

	filters := domain.PropertyFilters{
		LocationID:       q.UUID("locationId"),
		CategoryID:       q.UUID("categoryId"),
		AgencyID:         q.UUID("agencyId"),
		PropertyType:     parseEnum(q, "propertyType", domain.ParsePropertyType),
		MinPrice:         q.Float("minPrice"),
		MaxPrice:         q.Float("maxPrice"),
		Bedrooms:         q.Int("bedrooms", 0),
		Bathrooms:        q.Int("bathrooms", 0),
		FurnishingStatus: parseEnum(q, "furnishingStatus", domain.ParseFurnishingStatus),
		IsFeatured:       q.Bool("isFeatured"),
		Search:           q.String("search"),
		Limit:            q.Int("limit", 1),
		Offset:           q.Int("offset", 0),
	}
	if q.Err(w) {
		return
	}

	contextkeys.LoggerFromContext(r.Context()).Debug("Listing properties", port.Fields{
		"handler": "ListProperties",
		"filters": filters,
	})

	properties, err := h.listUC.Execute(r.Context(), filters)
	if err != nil {
		respondStorageError(w, r, err, "")
		return
	}

	RespondWithJSON(w, http.StatusOK, mapSlice(properties, toPropertyResponse))
}

// GetFeaturedProperties обрабатывает GET /api/properties/featured
func (h *PropertyHandler) GetFeaturedProperties(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r.URL.Query())
	limit := q.Int("limit", 1)
	if q.Err(w) {
		return
	}

	properties, err := h.featuredUC.Execute(r.Context(), limit)
	if err != nil {
		respondStorageError(w, r, err, "")
		return
	}

	RespondWithJSON(w, http.StatusOK, mapSlice(properties, toPropertyResponse))
}

// GetProperty обрабатывает GET /api/properties/{id}
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	property, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		respondStorageError(w, r, err, "Property not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

// CreateProperty обрабатывает POST /api/properties
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req CreatePropertyRequest
	if !decodeValidated(w, r, contracts.PropertyRequest, &req) {
		return
	}

	property, err := h.createUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		respondStorageError(w, r, err, "")
		return
	}

	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(*property))
}
