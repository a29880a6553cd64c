package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"

	"solar_lead_backend/internal/leads/domain"
	"solar_lead_backend/platform/apperr"
	"solar_lead_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

const errInvalidRequest = "invalid request body"

// LeadProcessor runs one inbound lead to an outcome.
type LeadProcessor interface {
	Process(ctx context.Context, lead domain.RawLead) domain.Outcome
}

// Handler handles webhook HTTP requests.
type Handler struct {
	processor LeadProcessor
}

// NewHandler creates a new webhook handler.
func NewHandler(processor LeadProcessor) *Handler {
	return &Handler{processor: processor}
}

// HandleLead receives a lead from the form provider.
// POST /webhook
// Skipped and processed leads both return 200; only a forwarding failure is 500.
// An empty body is an empty lead.
func (h *Handler) HandleLead(c *gin.Context) {
	var lead domain.RawLead
	if err := c.ShouldBindJSON(&lead); err != nil && !errors.Is(err, io.EOF) {
		httpkit.HandleError(c, apperr.BadRequest(errInvalidRequest).WithDetails(err.Error()))
		return
	}

	outcome := h.processor.Process(c.Request.Context(), lead)
	if outcome.Status == domain.StatusError {
		httpkit.JSON(c, http.StatusInternalServerError, outcome)
		return
	}

	httpkit.OK(c, outcome)
}
