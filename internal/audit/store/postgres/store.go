// Package postgres persists audit events in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"tincheck/internal/audit"
)

// Store implements audit.Store on database/sql.
type Store struct {
	db *sql.DB
}

// New creates a PostgreSQL audit store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the audit_events table when it does not exist yet.
// Called once at startup; safe to call repeatedly.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS audit_events (
			id            UUID PRIMARY KEY,
			ts            TIMESTAMPTZ NOT NULL,
			jurisdiction  TEXT NOT NULL,
			outcome       TEXT NOT NULL,
			subject_hash  TEXT NOT NULL,
			individual    BOOLEAN NOT NULL,
			company       BOOLEAN NOT NULL,
			request_id    TEXT NOT NULL DEFAULT '',
			client_ip     TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS audit_events_ts_idx ON audit_events (ts DESC);
	`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure audit schema: %w", err)
	}
	return nil
}

// Append inserts one audit event.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	const query = `
		INSERT INTO audit_events (id, ts, jurisdiction, outcome, subject_hash, individual, company, request_id, client_ip)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		event.Timestamp,
		event.Jurisdiction,
		event.Outcome,
		event.SubjectHash,
		event.Individual,
		event.Company,
		event.RequestID,
		event.ClientIP,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// List returns the most recent events, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]audit.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
		SELECT id, ts, jurisdiction, outcome, subject_hash, individual, company, request_id, client_ip
		FROM audit_events
		ORDER BY ts DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var e audit.Event
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Jurisdiction, &e.Outcome, &e.SubjectHash, &e.Individual, &e.Company, &e.RequestID, &e.ClientIP); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
