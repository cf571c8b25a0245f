// Package httpserver builds the HTTP server for the validation API.
package httpserver

import (
	"net/http"
	"time"
)

// Timeouts sized for this API: requests and responses are small JSON
// payloads, so anything slow is a stuck client, not a big transfer.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = time.Minute
)

// New builds the HTTP server with the service's timeout profile.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}
