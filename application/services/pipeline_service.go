// Package services contains the application services sitting between the
// HTTP transport and the domain model.
package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"pipeline-backend/domain/pipeline"
	"pipeline-backend/internal/observability"
)

// PipelineService analyzes submitted pipelines. Analysis never fails for
// graph content, however malformed; shape validation happens at the
// transport boundary.
type PipelineService interface {
	ParsePipeline(ctx context.Context, p pipeline.Pipeline) pipeline.Analysis
}

type pipelineService struct {
	logger    *zap.Logger
	collector *observability.Collector
	tracer    trace.Tracer
}

// NewPipelineService creates the service. collector may be nil when metrics
// are disabled.
func NewPipelineService(logger *zap.Logger, collector *observability.Collector, tracer trace.Tracer) PipelineService {
	return &pipelineService{
		logger:    logger,
		collector: collector,
		tracer:    tracer,
	}
}

func (s *pipelineService) ParsePipeline(ctx context.Context, p pipeline.Pipeline) pipeline.Analysis {
	ctx, span := s.tracer.Start(ctx, "pipeline.analyze",
		trace.WithAttributes(
			attribute.Int("pipeline.nodes", len(p.Nodes)),
			attribute.Int("pipeline.edges", len(p.Edges)),
		),
	)
	defer span.End()

	start := time.Now()
	analysis := pipeline.Analyze(p)
	span.SetAttributes(attribute.Bool("pipeline.is_dag", analysis.IsDAG))

	if s.collector != nil {
		s.collector.PipelinesParsed.Inc()
		s.collector.PipelineNodes.Observe(float64(analysis.NumNodes))
		s.collector.PipelineEdges.Observe(float64(analysis.NumEdges))
		if !analysis.IsDAG {
			s.collector.CyclesDetected.Inc()
		}
	}

	s.logger.Info("pipeline analyzed",
		zap.Int("numNodes", analysis.NumNodes),
		zap.Int("numEdges", analysis.NumEdges),
		zap.Bool("isDAG", analysis.IsDAG),
		zap.Duration("duration", time.Since(start)),
	)

	return analysis
}
