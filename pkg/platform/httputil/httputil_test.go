package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tincheck/pkg/tin"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"format", tin.ErrInvalidFormat, http.StatusUnprocessableEntity, "invalid_format"},
		{"length", tin.ErrInvalidLength, http.StatusUnprocessableEntity, "invalid_length"},
		{"component", tin.ErrInvalidComponent, http.StatusUnprocessableEntity, "invalid_component"},
		{"checksum", tin.ErrInvalidChecksum, http.StatusUnprocessableEntity, "invalid_checksum"},
		{"wrapped", fmt.Errorf("%w: bad rune", tin.ErrInvalidFormat), http.StatusUnprocessableEntity, "invalid_format"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantCode), rec.Body.String())
		})
	}
}

func TestDecode(t *testing.T) {
	type payload struct {
		TIN string `json:"tin"`
	}

	t.Run("valid body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"tin":"12345678Z"}`))

		got, ok := Decode[payload](rec, req)
		require.True(t, ok)
		assert.Equal(t, "12345678Z", got.TIN)
	})

	t.Run("malformed body writes 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))

		_, ok := Decode[payload](rec, req)
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
