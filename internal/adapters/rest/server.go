package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"listing-service/internal/core/port"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

// HealthChecker - зависимость, без которой сервис не готов принимать запросы
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	ServiceName    string
}

type Handlers struct {
	Properties *PropertyHandler
	Catalog    *CatalogHandler
	Site       *SiteHandler
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(cfg ServerConfig, h Handlers, health HealthChecker, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           NewRouter(cfg, h, health, baseLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

// NewRouter собирает все маршруты. Вынесен отдельно, чтобы тесты ходили в него через httptest.
func NewRouter(cfg ServerConfig, h Handlers, health HealthChecker, baseLogger port.LoggerPort) http.Handler {
	metrics := NewHTTPMetrics(cfg.ServiceName)

	r := chi.NewRouter()
	r.Use(metrics.Middleware, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Get("/healthz", healthHandler(health))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", h.Properties.ListProperties)
			r.Post("/", h.Properties.CreateProperty)
			// featured объявлен раньше {id}, иначе chi примет "featured" за id
			r.Get("/featured", h.Properties.GetFeaturedProperties)
			r.Get("/{id}", h.Properties.GetProperty)
		})

		r.Route("/agencies", func(r chi.Router) {
			r.Get("/", h.Catalog.ListAgencies)
			r.Post("/", h.Catalog.CreateAgency)
			r.Get("/{id}", h.Catalog.GetAgency)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", h.Catalog.ListLocations)
			r.Post("/", h.Catalog.CreateLocation)
			r.Get("/{id}", h.Catalog.GetLocation)
		})

		r.Route("/property-categories", func(r chi.Router) {
			r.Get("/", h.Catalog.ListPropertyCategories)
			r.Post("/", h.Catalog.CreatePropertyCategory)
			r.Get("/{id}", h.Catalog.GetPropertyCategory)
		})

		r.Route("/faqs", func(r chi.Router) {
			r.Get("/", h.Site.ListFaqs)
			r.Post("/", h.Site.CreateFaq)
			r.Get("/{id}", h.Site.GetFaq)
		})

		r.Get("/stats", h.Site.GetStats)
		r.Post("/newsletter/subscribe", h.Site.SubscribeNewsletter)
	})

	allowed := cfg.AllowedOrigins
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	}).Handler(r)
}

func healthHandler(health HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := health.Ping(ctx); err != nil {
				WriteJSONError(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
