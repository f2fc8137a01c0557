package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/secmap/capmap-agent/internal/api/middleware"
	"github.com/secmap/capmap-agent/internal/catalog"
	"github.com/secmap/capmap-agent/internal/executor"
	"github.com/secmap/capmap-agent/internal/inputcheck"
	"github.com/secmap/capmap-agent/internal/models"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// AnalyzeRequest is the HTTP body for capability analysis (no claimed role).
type AnalyzeRequest struct {
	EventID     string `json:"event_id"`
	VendorName  string `json:"vendor_name"`
	SafeguardID string `json:"safeguard_id"`
	Text        string `json:"response_text"`
}

type Handler struct {
	analyzeExecutor  *executor.AnalyzeExecutor
	validateExecutor *executor.ValidateExecutor
	store            executor.Store
	logger           *zerolog.Logger
}

func NewHandler(analyzeExec *executor.AnalyzeExecutor, validateExec *executor.ValidateExecutor, store executor.Store, logger *zerolog.Logger) *Handler {
	return &Handler{
		analyzeExecutor:  analyzeExec,
		validateExecutor: validateExec,
		store:            store,
		logger:           logger,
	}
}

// POST /api/v1/analyze
// Body: AnalyzeRequest
// Returns: AnalysisResult
func (h *Handler) Analyze(req *restful.Request, resp *restful.Response) {
	var analyzeReq AnalyzeRequest
	if err := req.ReadEntity(&analyzeReq); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := inputcheck.SafeguardID(analyzeReq.SafeguardID); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	if err := inputcheck.Text(analyzeReq.Text); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("event_id", analyzeReq.EventID).
		Str("vendor", analyzeReq.VendorName).
		Str("safeguard", analyzeReq.SafeguardID).
		Msg("Start analysis")

	ctx := req.Request.Context()
	mc := models.MappingContext{
		RequestID:   analyzeReq.EventID,
		VendorName:  analyzeReq.VendorName,
		SafeguardID: analyzeReq.SafeguardID,
		Text:        analyzeReq.Text,
		CreatedAt:   time.Now(),
	}

	result, err := h.analyzeExecutor.Execute(ctx, mc)
	if err != nil {
		h.writeExecutorError(resp, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/validate
// Body: ValidationRequest
// Returns: ValidationResult
func (h *Handler) Validate(req *restful.Request, resp *restful.Response) {
	var validationReq models.ValidationRequest
	if err := req.ReadEntity(&validationReq); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	mc, err := Normalize(validationReq)
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("event_id", validationReq.EventID).
		Str("vendor", validationReq.Vendor.Name).
		Str("safeguard", mc.SafeguardID).
		Str("claimed_role", string(mc.ClaimedRole)).
		Msg("Start validation")

	ctx := req.Request.Context()
	result, err := h.validateExecutor.Execute(ctx, mc)
	if err != nil {
		h.writeExecutorError(resp, err)
		return
	}

	h.logger.Info().
		Str("event_id", result.ID).
		Str("status", string(result.Status)).
		Int("confidence", result.Confidence).
		Msg("Validation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// GET /api/v1/safeguards
func (h *Handler) ListSafeguards(req *restful.Request, resp *restful.Response) {
	ids, err := h.store.ListSafeguardIDs(req.Request.Context())
	if err != nil {
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, ids)
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

func (h *Handler) writeExecutorError(resp *restful.Response, err error) {
	if errors.Is(err, catalog.ErrSafeguardNotFound) {
		middleware.HandleError(resp, err, http.StatusNotFound)
		return
	}
	middleware.HandleError(resp, err, http.StatusInternalServerError)
}

// Normalize validates a raw request envelope and converts it into the
// engine's mapping context.
func Normalize(req models.ValidationRequest) (models.MappingContext, error) {
	if err := inputcheck.SafeguardID(req.Mapping.SafeguardID); err != nil {
		return models.MappingContext{}, err
	}

	role, err := inputcheck.Role(req.Mapping.ClaimedRole)
	if err != nil {
		return models.MappingContext{}, err
	}

	if err := inputcheck.Text(req.Mapping.SupportingText); err != nil {
		return models.MappingContext{}, err
	}

	return models.MappingContext{
		RequestID:   req.EventID,
		VendorName:  req.Vendor.Name,
		SafeguardID: req.Mapping.SafeguardID,
		ClaimedRole: role,
		Text:        req.Mapping.SupportingText,
		CreatedAt:   time.Now(),
	}, nil
}
