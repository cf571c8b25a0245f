// Package httputil centralizes JSON encoding and error translation for HTTP
// handlers so every endpoint returns a consistent envelope.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"tincheck/pkg/tin"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError translates an error into an HTTP status and a stable wire code.
// Validation kinds map to 422 so clients can distinguish a malformed
// identifier from a malformed request.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal"

	switch {
	case errors.Is(err, tin.ErrInvalidFormat),
		errors.Is(err, tin.ErrInvalidLength),
		errors.Is(err, tin.ErrInvalidComponent),
		errors.Is(err, tin.ErrInvalidChecksum):
		status = http.StatusUnprocessableEntity
		code = tin.Kind(err)
	}

	WriteJSON(w, status, ErrorResponse{Error: code})
}

// Decode reads a JSON request body into T. On failure it writes a 400
// response and returns false; the handler should simply return.
func Decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed request body"})
		return req, false
	}
	return req, true
}
