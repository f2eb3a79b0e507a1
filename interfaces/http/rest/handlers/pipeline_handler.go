// Package handlers implements the REST endpoint handlers.
package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"pipeline-backend/application/services"
	"pipeline-backend/pkg/api"
	appErrors "pipeline-backend/pkg/errors"
)

// PipelineHandler serves the pipeline analysis endpoints.
type PipelineHandler struct {
	service      services.PipelineService
	logger       *zap.Logger
	maxBodyBytes int64
}

// NewPipelineHandler creates a handler bound to the given service.
func NewPipelineHandler(service services.PipelineService, logger *zap.Logger, maxBodyBytes int64) *PipelineHandler {
	return &PipelineHandler{
		service:      service,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// ParsePipeline handles POST /pipelines/parse. Shape problems (bad JSON,
// missing required fields) are the only way to get a non-200: the analysis
// itself answers every graph, including ones with dangling edge references.
func (h *PipelineHandler) ParsePipeline(w http.ResponseWriter, r *http.Request) {
	var req api.ParsePipelineRequest
	if err := api.ParseJSONBody(r, &req, h.maxBodyBytes); err != nil {
		h.logger.Debug("rejected pipeline body", zap.Error(err))
		h.respondError(w, appErrors.NewValidation("Invalid request body"))
		return
	}

	if err := api.ValidateStruct(req); err != nil {
		h.respondError(w, appErrors.NewValidation(err.Error()))
		return
	}

	analysis := h.service.ParsePipeline(r.Context(), req.ToDomain())
	api.Success(w, http.StatusOK, api.FromAnalysis(analysis))
}

// respondError maps application error types onto HTTP status codes.
func (h *PipelineHandler) respondError(w http.ResponseWriter, err error) {
	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) {
		h.logger.Error("internal error", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch appErr.Type {
	case appErrors.ErrorTypeValidation:
		api.Error(w, http.StatusBadRequest, appErr.Message)
	case appErrors.ErrorTypeNotFound:
		api.Error(w, http.StatusNotFound, appErr.Message)
	default:
		h.logger.Error("internal error", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
