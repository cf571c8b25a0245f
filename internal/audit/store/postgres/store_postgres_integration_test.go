//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"tincheck/internal/audit"
	"tincheck/internal/audit/store/postgres"
	"tincheck/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *postgres.Store
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = postgres.New(s.pg.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(context.Background(), "audit_events"))
}

func (s *PostgresStoreSuite) newEvent(jurisdiction string, ts time.Time) audit.Event {
	return audit.Event{
		ID:           uuid.New(),
		Timestamp:    ts,
		Jurisdiction: jurisdiction,
		Outcome:      audit.OutcomeValid,
		SubjectHash:  audit.HashSubject("01234567897"),
		Individual:   true,
		RequestID:    uuid.NewString(),
		ClientIP:     "198.51.100.4",
	}
}

func (s *PostgresStoreSuite) TestAppendAndList() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	for i, jurisdiction := range []string{"za", "es", "ad"} {
		event := s.newEvent(jurisdiction, base.Add(time.Duration(i)*time.Second))
		s.Require().NoError(s.store.Append(ctx, event))
	}

	events, err := s.store.List(ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal("ad", events[0].Jurisdiction)
	s.Equal("es", events[1].Jurisdiction)
	s.Equal(audit.HashSubject("01234567897"), events[0].SubjectHash)
	s.True(events[0].Individual)
	s.Equal("198.51.100.4", events[0].ClientIP)
}

func (s *PostgresStoreSuite) TestAppendIsIdempotent() {
	ctx := context.Background()
	event := s.newEvent("za", time.Now().UTC())

	s.Require().NoError(s.store.Append(ctx, event))
	s.Require().NoError(s.store.Append(ctx, event))

	events, err := s.store.List(ctx, 0)
	s.Require().NoError(err)
	s.Len(events, 1)
}

func (s *PostgresStoreSuite) TestEnsureSchemaIsRepeatable() {
	s.NoError(s.store.EnsureSchema(context.Background()))
}
