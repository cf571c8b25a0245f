package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tincheck/internal/platform/metrics"
	"tincheck/pkg/platform/httputil"
	"tincheck/pkg/requestcontext"
)

// Middleware enforces the limiter per client IP.
type Middleware struct {
	limiter Limiter
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewMiddleware wires a limiter into an HTTP middleware.
func NewMiddleware(limiter Limiter, logger *slog.Logger, m *metrics.Metrics) *Middleware {
	return &Middleware{limiter: limiter, logger: logger, metrics: m}
}

// Handler wraps next with the rate limit check. Limiter errors fail open.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := requestcontext.ClientIP(ctx)
		if key == "" {
			key = r.RemoteAddr
		}

		result, err := m.limiter.Allow(ctx, key)
		if err != nil {
			m.logger.Error("rate limit check failed", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			if m.metrics != nil {
				m.metrics.RateLimitRejected.Inc()
			}
			retryAfter := int(time.Until(result.ResetAt).Seconds()) + 1
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			httputil.WriteJSON(w, http.StatusTooManyRequests, httputil.ErrorResponse{Error: "rate limit exceeded"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
