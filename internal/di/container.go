// Package di wires the application together with google/wire.
package di

import (
	"context"

	"go.uber.org/zap"

	"pipeline-backend/application/services"
	"pipeline-backend/interfaces/http/rest"
	"pipeline-backend/internal/config"
	"pipeline-backend/internal/observability"
)

// Container holds every long-lived dependency of the service.
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Collector *observability.Collector
	Tracing   *observability.TracerProvider
	Service   services.PipelineService
	Router    *rest.Router
}

// Shutdown flushes logs and pending trace spans.
func (c *Container) Shutdown(ctx context.Context) error {
	// Sync can fail on stderr; that is not worth surfacing at shutdown.
	_ = c.Logger.Sync()
	return c.Tracing.Shutdown(ctx)
}
