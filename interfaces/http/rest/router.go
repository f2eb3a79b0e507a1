// Package rest assembles the chi router, middleware chain and routes.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"pipeline-backend/application/services"
	"pipeline-backend/interfaces/http/rest/handlers"
	"pipeline-backend/internal/config"
	"pipeline-backend/internal/middleware"
	"pipeline-backend/internal/observability"
	"pipeline-backend/pkg/api"
)

// Router builds the HTTP handler tree for the service.
type Router struct {
	cfg       *config.Config
	logger    *zap.Logger
	collector *observability.Collector
	service   services.PipelineService
}

// NewRouter creates a router instance.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	collector *observability.Collector,
	service services.PipelineService,
) *Router {
	return &Router{
		cfg:       cfg,
		logger:    logger,
		collector: collector,
		service:   service,
	}
}

// Setup configures all middleware and routes.
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Recovery(rt.logger))
	if rt.cfg.Metrics.Enabled {
		router.Use(observability.HTTPMetrics(rt.collector))
	}
	if rt.cfg.Breaker.Enabled {
		router.Use(middleware.CircuitBreaker(rt.cfg.Breaker, rt.logger))
	}
	router.Use(middleware.Timeout(rt.cfg.Server.RequestTimeout, rt.logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: rt.cfg.CORS.AllowCredentials,
		MaxAge:           rt.cfg.CORS.MaxAge,
	}))

	// Root ping, kept for compatibility with existing clients.
	router.Get("/", rt.ping)
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.cfg.Metrics.Enabled {
		router.Method(http.MethodGet, "/metrics", rt.collector.Handler())
	}

	router.Get("/api/swagger", api.SwaggerHandler())
	router.Get("/api/docs", api.SwaggerUIHandler())

	router.Route("/pipelines", func(r chi.Router) {
		h := handlers.NewPipelineHandler(rt.service, rt.logger, rt.cfg.Server.MaxBodyBytes)
		r.Post("/parse", h.ParsePipeline)
	})

	return router
}

func (rt *Router) ping(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, map[string]string{"Ping": "Pong"})
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (rt *Router) readinessCheck(w http.ResponseWriter, r *http.Request) {
	// No downstream dependencies; ready as soon as the router is up.
	api.Success(w, http.StatusOK, map[string]string{"status": "ready"})
}
