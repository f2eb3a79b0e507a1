package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"pipeline-backend/application/services"
	"pipeline-backend/interfaces/http/rest"
	"pipeline-backend/internal/config"
	"pipeline-backend/internal/observability"
)

// SuperSet is the provider set for the whole application.
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideCollector,
	ProvideTracerProvider,
	ProvidePipelineService,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// ProvideLogger builds the zap logger for the configured environment.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// ProvideCollector builds the Prometheus collector.
func ProvideCollector(cfg *config.Config) *observability.Collector {
	return observability.NewCollector(cfg.Metrics.Namespace)
}

// ProvideTracerProvider initializes tracing (a no-op provider when disabled).
func ProvideTracerProvider(cfg *config.Config) (*observability.TracerProvider, error) {
	return observability.InitTracing(cfg)
}

// ProvidePipelineService builds the pipeline analysis service.
func ProvidePipelineService(
	logger *zap.Logger,
	collector *observability.Collector,
	tracing *observability.TracerProvider,
) services.PipelineService {
	return services.NewPipelineService(logger, collector, tracing.Tracer())
}

// ProvideRouter builds the HTTP router.
func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	collector *observability.Collector,
	service services.PipelineService,
) *rest.Router {
	return rest.NewRouter(cfg, logger, collector, service)
}
