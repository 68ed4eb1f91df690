// Package handler exposes the badge render endpoint.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"lanyard/internal/badge/service"
	id "lanyard/pkg/domain"
	dErrors "lanyard/pkg/domain-errors"
	"lanyard/pkg/platform/httputil"
	"lanyard/pkg/requestcontext"
)

// Service defines the interface for badge operations.
type Service interface {
	Render(ctx context.Context, req service.RenderRequest) (*service.RenderResult, error)
}

// Handler wires the badge endpoint to the render service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a badge handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts badge endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/badges/{identifier}", h.HandleRender)
}

// HandleRender handles GET /badges/{identifier} requests. The identifier is
// a check-in token, or a registration number when the event query parameter
// scopes the fallback lookup.
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	identifier := chi.URLParam(r, "identifier")
	if identifier == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "identifier is required"))
		return
	}

	req := service.RenderRequest{Identifier: identifier}
	if raw := r.URL.Query().Get("event"); raw != "" {
		eventID, err := id.ParseEventID(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid event id"))
			return
		}
		req.EventID = &eventID
	}

	result, err := h.service.Render(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "badge render failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	if result.RedirectURL != "" {
		h.logger.InfoContext(ctx, "badge redirected to stored copy",
			"request_id", requestID,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		http.Redirect(w, r, result.RedirectURL, http.StatusFound)
		return
	}

	h.logger.InfoContext(ctx, "badge rendered",
		"request_id", requestID,
		"omitted_elements", len(result.OmittedElements),
		"bytes", len(result.PDF),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.PDF)
}
