package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tincheck/internal/admin"
	"tincheck/internal/audit/publisher"
	"tincheck/internal/audit/store/memory"
	"tincheck/internal/ratelimit"
	"tincheck/internal/validation"
	"tincheck/internal/validation/handler"
	"tincheck/pkg/tin/registry"
)

func newTestServer(t *testing.T, limit int) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewInMemoryStore()
	pub := publisher.NewPublisher(store)
	svc := validation.New(registry.Default(), pub, nil, logger)

	router := NewRouter(Deps{
		Logger:     logger,
		Validation: handler.New(svc, logger),
		Admin:      admin.New(store, "test-key", "", false, logger),
		RateLimit:  ratelimit.NewMiddleware(ratelimit.NewMemoryLimiter(limit, time.Minute), logger, nil),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestRouterEndToEnd(t *testing.T) {
	srv := newTestServer(t, 100)

	t.Run("healthz", func(t *testing.T) {
		resp, err := stdhttp.Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	})

	t.Run("jurisdictions", func(t *testing.T) {
		resp, err := stdhttp.Get(srv.URL + "/v1/jurisdictions")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

		var body handler.JurisdictionsResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, []string{"ad", "es", "za"}, body.Jurisdictions)
	})

	t.Run("validate through the full stack", func(t *testing.T) {
		payload, _ := json.Marshal(handler.ValidateRequest{TIN: " 0123456789 7"})
		resp, err := stdhttp.Post(srv.URL+"/v1/tin/za/validate", "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

		var body handler.ValidateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Valid)
		assert.Equal(t, "01234567897", body.Compact)
		assert.True(t, body.Individual)
	})

	t.Run("admin token exchange is disabled without a secret", func(t *testing.T) {
		payload, _ := json.Marshal(admin.TokenRequest{Secret: "anything"})
		resp, err := stdhttp.Post(srv.URL+"/admin/token", "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, stdhttp.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestRouterRateLimiting(t *testing.T) {
	srv := newTestServer(t, 2)

	get := func() int {
		resp, err := stdhttp.Get(srv.URL + "/v1/jurisdictions")
		require.NoError(t, err)
		defer resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, stdhttp.StatusOK, get())
	assert.Equal(t, stdhttp.StatusOK, get())
	assert.Equal(t, stdhttp.StatusTooManyRequests, get())

	// The operational endpoints stay reachable when the API budget is spent.
	resp, err := stdhttp.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)
}
