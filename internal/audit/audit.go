// Package audit captures validation activity for compliance trails.
//
// Events never carry the raw identifier: the subject is stored as a SHA-256
// hash so trails stay useful for traceability without persisting PII.
package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Outcome labels for validation events. Failure outcomes reuse the error
// kind labels from pkg/tin.
const OutcomeValid = "valid"

// Event records one validation call. Keep it transport-agnostic so stores
// and sinks can fan out.
type Event struct {
	ID           uuid.UUID `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Jurisdiction string    `json:"jurisdiction"`
	Outcome      string    `json:"outcome"`
	// SubjectHash is the SHA-256 hash of the compacted identifier. Raw
	// identifiers are never persisted.
	SubjectHash string `json:"subject_hash"`
	Individual  bool   `json:"individual"`
	Company     bool   `json:"company"`
	RequestID   string `json:"request_id,omitempty"`
	ClientIP    string `json:"client_ip,omitempty"`
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context, limit int) ([]Event, error)
}

// Sink receives a copy of every event in addition to the store, e.g. a
// Kafka topic feeding downstream compliance systems.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// HashSubject derives the stored subject hash from a compacted identifier.
// Hashing the compact form keeps the hash stable across input formattings of
// the same number.
func HashSubject(compact string) string {
	if compact == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(compact))
	return hex.EncodeToString(sum[:])
}
