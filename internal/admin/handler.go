// Package admin exposes the operator endpoints: token exchange and the audit
// trail. Everything except the token exchange requires a bearer token.
package admin

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tincheck/internal/audit"
	"tincheck/pkg/platform/httputil"
	"tincheck/pkg/platform/middleware/auth"
	"tincheck/pkg/platform/secrets"
	"tincheck/pkg/requestcontext"
)

const defaultAuditLimit = 100

// TokenRequest exchanges the shared admin secret for a bearer token.
type TokenRequest struct {
	Secret string `json:"secret"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// AuditResponse lists recorded audit events, newest first.
type AuditResponse struct {
	Events []audit.Event `json:"events"`
}

// Handler handles the admin endpoints.
type Handler struct {
	logger          *slog.Logger
	store           audit.Store
	signingKey      string
	adminSecretHash string
	regulated       bool
}

// New creates an admin Handler. An empty adminSecretHash disables the token
// exchange and with it the whole admin surface. In regulated mode audit
// listings redact client IPs.
func New(store audit.Store, signingKey, adminSecretHash string, regulated bool, logger *slog.Logger) *Handler {
	return &Handler{
		logger:          logger,
		store:           store,
		signingKey:      signingKey,
		adminSecretHash: adminSecretHash,
		regulated:       regulated,
	}
}

// Register registers the admin routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/token", h.handleToken)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireToken(h.signingKey))
		pr.Get("/audit", h.handleListAudit)
	})
}

func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.adminSecretHash == "" {
		httputil.WriteJSON(w, http.StatusServiceUnavailable, httputil.ErrorResponse{Error: "admin access not configured"})
		return
	}

	req, ok := httputil.Decode[TokenRequest](w, r)
	if !ok {
		return
	}

	if err := secrets.Verify(req.Secret, h.adminSecretHash); err != nil {
		if !errors.Is(err, secrets.ErrMismatch) {
			h.logger.ErrorContext(ctx, "secret verification failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		httputil.WriteJSON(w, http.StatusUnauthorized, httputil.ErrorResponse{Error: "invalid secret"})
		return
	}

	token, err := auth.IssueToken(h.signingKey, "admin", time.Now())
	if err != nil {
		h.logger.ErrorContext(ctx, "token issuance failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorResponse{Error: "internal"})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, TokenResponse{
		Token:     token,
		ExpiresIn: int(auth.TokenTTL.Seconds()),
	})
}

func (h *Handler) handleListAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultAuditLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	events, err := h.store.List(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "audit listing failed",
			"request_id", requestcontext.RequestID(ctx),
			"subject", requestcontext.Subject(ctx),
			"error", err,
		)
		httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorResponse{Error: "internal"})
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	if h.regulated {
		for i := range events {
			events[i].ClientIP = ""
		}
	}
	httputil.WriteJSON(w, http.StatusOK, AuditResponse{Events: events})
}
