package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"visitgate/internal/eligibility"
	"visitgate/internal/eligibility/models"
	"visitgate/pkg/platform/httputil"
	"visitgate/pkg/requestcontext"
)

// Service defines the interface for eligibility operations.
type Service interface {
	AvailableSessions(ctx context.Context, req eligibility.AvailableSessionsRequest) ([]models.AvailableVisitSession, error)
}

// Handler wires the available-sessions endpoint to the eligibility service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an eligibility handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts eligibility endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/visit-sessions/available", h.HandleAvailableSessions)
}

// HandleAvailableSessions handles GET /visit-sessions/available requests.
func (h *Handler) HandleAvailableSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	query := QueryFromValues(r.URL.Query())
	if err := query.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid available sessions request",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	req := query.Parsed()

	sessions, err := h.service.AvailableSessions(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "available sessions failed",
			"request_id", requestID,
			"prison_id", req.PrisonCode,
			"prisoner_id", req.PrisonerID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "available sessions returned",
		"request_id", requestID,
		"prison_id", req.PrisonCode,
		"prisoner_id", req.PrisonerID,
		"sessions", len(sessions),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromSessions(sessions))
}
