package rest

import (
	"net/http"
	"strings"

	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port/usecases_port"
)

// SiteHandler - FAQ, статистика для главной и подписка на рассылку
type SiteHandler struct {
	listFaqsUC  usecases_port.ListFaqsUseCase
	getFaqUC    usecases_port.GetFaqUseCase
	createFaqUC usecases_port.CreateFaqUseCase
	statsUC     usecases_port.GetStatsUseCase
	newsletter  usecases_port.SubscribeNewsletterUseCase
}

func NewSiteHandler(
	listFaqsUC usecases_port.ListFaqsUseCase,
	getFaqUC usecases_port.GetFaqUseCase,
	createFaqUC usecases_port.CreateFaqUseCase,
	statsUC usecases_port.GetStatsUseCase,
	newsletter usecases_port.SubscribeNewsletterUseCase,
) *SiteHandler {
	return &SiteHandler{
		listFaqsUC:  listFaqsUC,
		getFaqUC:    getFaqUC,
		createFaqUC: createFaqUC,
		statsUC:     statsUC,
		newsletter:  newsletter,
	}
}

// ListFaqs обрабатывает GET /api/faqs?category=
func (h *SiteHandler) ListFaqs(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r.URL.Query())
	category := parseEnum(q, "category", domain.ParseFaqCategory)
	if q.Err(w) {
		return
	}

	var categoryFilter *domain.FaqCategory
	if category != "" {
		categoryFilter = &category
	}

	faqs, err := h.listFaqsUC.Execute(r.Context(), categoryFilter)
	if err != nil {
		respondStorageError(w, r, err, "")
		return
	}
	RespondWithJSON(w, http.StatusOK, mapSlice(faqs, toFaqResponse))
}

func (h *SiteHandler) GetFaq(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "FAQ not found")
		return
	}
	faq, err := h.getFaqUC.Execute(r.Context(), id)
	if err != nil {
		respondStorageError(w, r, err, "FAQ not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toFaqResponse(*faq))
}

func (h *SiteHandler) CreateFaq(w http.ResponseWriter, r *http.Request) {
	var req CreateFaqRequest
	if !decodeValidated(w, r, contracts.FaqRequest, &req) {
		return
	}
	faq, err := h.createFaqUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		respondStorageError(w, r, err, "")
		return
	}
	RespondWithJSON(w, http.StatusCreated, toFaqResponse(*faq))
}

// GetStats обрабатывает GET /api/stats
func (h *SiteHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUC.Execute(r.Context())
	if err != nil {
		respondStorageError(w, r, err, "")
		return
	}
	RespondWithJSON(w, http.StatusOK, StatsResponse{
		TotalProperties:    stats.TotalProperties,
		TotalAgencies:      stats.TotalAgencies,
		TotalLocations:     stats.TotalLocations,
		FeaturedProperties: stats.FeaturedProperties,
	})
}

// SubscribeNewsletter обрабатывает POST /api/newsletter/subscribe.
// Адрес никуда не сохраняется.
func (h *SiteHandler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req NewsletterSubscribeRequest
	if !decodeValidated(w, r, contracts.NewsletterSubscriptionRequest, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeFieldErrors(w, "Validation failed", []contracts.FieldError{{Field: "email", Message: "is required"}})
		return
	}

	if err := h.newsletter.Execute(r.Context(), req.Email); err != nil {
		respondStorageError(w, r, err, "")
		return
	}
	RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Successfully subscribed to newsletter"})
}
