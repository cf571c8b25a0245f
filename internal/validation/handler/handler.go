// Package handler exposes the validation service over HTTP.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tincheck/internal/validation"
	"tincheck/pkg/platform/httputil"
	"tincheck/pkg/requestcontext"
	"tincheck/pkg/tin"
)

// Service defines the validation operations the handler exposes.
type Service interface {
	Jurisdictions() []string
	Validate(ctx context.Context, jurisdiction, input string) (tin.Result, error)
	Compact(ctx context.Context, jurisdiction, input string) (string, error)
	Format(ctx context.Context, jurisdiction, input string) (string, error)
}

// ValidateRequest carries the identifier to check. The same shape serves the
// compact and format endpoints.
type ValidateRequest struct {
	TIN string `json:"tin"`
}

// ValidateResponse reports the outcome of a validation. Invalid identifiers
// are a 200 with valid=false and a stable error code; only unroutable or
// malformed requests get error statuses.
type ValidateResponse struct {
	Jurisdiction string `json:"jurisdiction"`
	Valid        bool   `json:"valid"`
	Compact      string `json:"compact,omitempty"`
	Individual   bool   `json:"individual,omitempty"`
	Company      bool   `json:"company,omitempty"`
	Error        string `json:"error,omitempty"`
}

// CompactResponse carries a normalized identifier.
type CompactResponse struct {
	Jurisdiction string `json:"jurisdiction"`
	Compact      string `json:"compact"`
}

// FormatResponse carries a display-formatted identifier.
type FormatResponse struct {
	Jurisdiction string `json:"jurisdiction"`
	Formatted    string `json:"formatted"`
}

// JurisdictionsResponse lists the supported jurisdiction codes.
type JurisdictionsResponse struct {
	Jurisdictions []string `json:"jurisdictions"`
}

// Handler handles the public validation endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a validation Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register registers the validation routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/jurisdictions", h.handleJurisdictions)
	r.Post("/tin/{jurisdiction}/validate", h.handleValidate)
	r.Post("/tin/{jurisdiction}/compact", h.handleCompact)
	r.Post("/tin/{jurisdiction}/format", h.handleFormat)
}

func (h *Handler) handleJurisdictions(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, JurisdictionsResponse{Jurisdictions: h.service.Jurisdictions()})
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	jurisdiction := chi.URLParam(r, "jurisdiction")

	req, ok := httputil.Decode[ValidateRequest](w, r)
	if !ok {
		return
	}

	result, err := h.service.Validate(ctx, jurisdiction, req.TIN)
	if err != nil {
		h.writeServiceError(w, r, jurisdiction, err)
		return
	}

	resp := ValidateResponse{
		Jurisdiction: jurisdiction,
		Valid:        result.Valid,
		Compact:      result.Compact,
		Individual:   result.Individual,
		Company:      result.Company,
	}
	if !result.Valid {
		resp.Error = tin.Kind(result.Err)
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCompact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	jurisdiction := chi.URLParam(r, "jurisdiction")

	req, ok := httputil.Decode[ValidateRequest](w, r)
	if !ok {
		return
	}

	compact, err := h.service.Compact(ctx, jurisdiction, req.TIN)
	if err != nil {
		h.writeServiceError(w, r, jurisdiction, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CompactResponse{Jurisdiction: jurisdiction, Compact: compact})
}

func (h *Handler) handleFormat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	jurisdiction := chi.URLParam(r, "jurisdiction")

	req, ok := httputil.Decode[ValidateRequest](w, r)
	if !ok {
		return
	}

	formatted, err := h.service.Format(ctx, jurisdiction, req.TIN)
	if err != nil {
		h.writeServiceError(w, r, jurisdiction, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FormatResponse{Jurisdiction: jurisdiction, Formatted: formatted})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, jurisdiction string, err error) {
	ctx := r.Context()
	if errors.Is(err, validation.ErrUnknownJurisdiction) {
		httputil.WriteJSON(w, http.StatusNotFound, httputil.ErrorResponse{Error: "unknown_jurisdiction"})
		return
	}
	switch {
	case errors.Is(err, tin.ErrInvalidFormat),
		errors.Is(err, tin.ErrInvalidLength),
		errors.Is(err, tin.ErrInvalidComponent),
		errors.Is(err, tin.ErrInvalidChecksum):
		// Expected outcome for malformed input; no log noise.
	default:
		h.logger.ErrorContext(ctx, "validation request failed",
			"jurisdiction", jurisdiction,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
