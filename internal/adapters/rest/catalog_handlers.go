package rest

import (
	"net/http"

	"listing-service/internal/contracts"
	"listing-service/internal/core/port/usecases_port"
)

// CatalogHandler отвечает за справочники: агентства, локации, категории
type CatalogHandler struct {
	listAgenciesUC   usecases_port.ListAgenciesUseCase
	getAgencyUC      usecases_port.GetAgencyUseCase
	createAgencyUC   usecases_port.CreateAgencyUseCase
	listLocationsUC  usecases_port.ListLocationsUseCase
	getLocationUC    usecases_port.GetLocationUseCase
	createLocationUC usecases_port.CreateLocationUseCase
	listCategoriesUC usecases_port.ListPropertyCategoriesUseCase
	getCategoryUC    usecases_port.GetPropertyCategoryUseCase
	createCategoryUC usecases_port.CreatePropertyCategoryUseCase
}

type CatalogUseCases struct {
	ListAgencies   usecases_port.ListAgenciesUseCase
	GetAgency      usecases_port.GetAgencyUseCase
	CreateAgency   usecases_port.CreateAgencyUseCase
	ListLocations  usecases_port.ListLocationsUseCase
	GetLocation    usecases_port.GetLocationUseCase
	CreateLocation usecases_port.CreateLocationUseCase
	ListCategories usecases_port.ListPropertyCategoriesUseCase
	GetCategory    usecases_port.GetPropertyCategoryUseCase
	CreateCategory usecases_port.CreatePropertyCategoryUseCase
}

func NewCatalogHandler(uc CatalogUseCases) *CatalogHandler {
	return &CatalogHandler{
		listAgenciesUC:   uc.ListAgencies,
		getAgencyUC:      uc.GetAgency,
		createAgencyUC:   uc.CreateAgency,
		listLocationsUC:  uc.ListLocations,
		getLocationUC:    uc.GetLocation,
		createLocationUC: uc.CreateLocation,
		listCategoriesUC: uc.ListCategories,
		getCategoryUC:    uc.GetCategory,
		createCategoryUC: uc.CreateCategory,
	}
}

// --- агентства ---

func (h *CatalogHandler) ListAgencies(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.listAgenciesUC.Execute(r.Context())
	if err != nil {
		respondStorageError(w, r, err, "")
		return
	}
	RespondWithJSON(w, http.StatusOK, mapSlice(agencies, toAgencyResponse))
}

func (h *CatalogHandler) GetAgency(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Agency not found")
		return
	}
	agency, err := h.getAgencyUC.Execute(r.Context(), id)
	if err != nil {
		respondStorageError(w, r, err, "Agency not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toAgencyResponse(*agency))
}

func (h *CatalogHandler) CreateAgency(w http.ResponseWriter, r *http.Request) {
	var req CreateAgencyRequest
	if !decodeValidated(w, r, contracts.AgencyRequest, &req) {
		return
	}
	agency, err := h.createAgencyUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		respondStorageError(w, r, err, "")
		return
	}
	RespondWithJSON(w, http.StatusCreated, toAgencyResponse(*agency))
}

// --- локации ---

func (h *CatalogHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.listLocationsUC.Execute(r.Context())
	if err != nil {
		respondStorageError(w, r, err, "")
		return
	}
	RespondWithJSON(w, http.StatusOK, mapSlice(locations, toLocationResponse))
}

func (h *CatalogHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Location not found")
		return
	}
	location, err := h.getLocationUC.Execute(r.Context(), id)
	if err != nil {
		respondStorageError(w, r, err, "Location not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toLocationResponse(*location))
}

func (h *CatalogHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req CreateLocationRequest
	if !decodeValidated(w, r, contracts.LocationRequest, &req) {
		return
	}
	location, err := h.createLocationUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		respondStorageError(w, r, err, "")
		return
	}
	RespondWithJSON(w, http.StatusCreated, toLocationResponse(*location))
}

// --- категории ---

func (h *CatalogHandler) ListPropertyCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listCategoriesUC.Execute(r.Context())
	if err != nil {
		respondStorageError(w, r, err, "")
		return
	}
	RespondWithJSON(w, http.StatusOK, mapSlice(categories, toPropertyCategoryResponse))
}

func (h *CatalogHandler) GetPropertyCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Property category not found")
		return
	}
	category, err := h.getCategoryUC.Execute(r.Context(), id)
	if err != nil {
		respondStorageError(w, r, err, "Property category not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertyCategoryResponse(*category))
}

func (h *CatalogHandler) CreatePropertyCategory(w http.ResponseWriter, r *http.Request) {
	var req CreatePropertyCategoryRequest
	if !decodeValidated(w, r, contracts.PropertyCategoryRequest, &req) {
		return
	}
	category, err := h.createCategoryUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		respondStorageError(w, r, err, "")
		return
	}
	RespondWithJSON(w, http.StatusCreated, toPropertyCategoryResponse(*category))
}
