// Package validation orchestrates identifier validation: registry lookup,
// the validator pipeline, metrics, tracing and the audit trail.
package validation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"tincheck/internal/audit"
	"tincheck/internal/platform/metrics"
	"tincheck/pkg/requestcontext"
	"tincheck/pkg/tin"
	"tincheck/pkg/tin/registry"
)

// ErrUnknownJurisdiction indicates the requested jurisdiction code has no
// registered validator.
var ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

// AuditPublisher is the slice of the audit publisher the service needs.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service exposes the validation operations to transport layers.
type Service struct {
	registry  *registry.Registry
	publisher AuditPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	tracer    trace.Tracer
}

// New constructs the validation service.
func New(reg *registry.Registry, publisher AuditPublisher, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		registry:  reg,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		tracer:    otel.Tracer("tincheck/validation"),
	}
}

// Jurisdictions returns the registered jurisdiction codes, sorted.
func (s *Service) Jurisdictions() []string {
	return s.registry.Codes()
}

// Validate runs the full pipeline for one identifier and records the
// outcome. Malformed identifiers are a regular outcome inside the Result;
// the returned error is reserved for unknown jurisdictions.
func (s *Service) Validate(ctx context.Context, jurisdiction, input string) (tin.Result, error) {
	v, ok := s.registry.Get(jurisdiction)
	if !ok {
		return tin.Result{}, ErrUnknownJurisdiction
	}

	ctx, span := s.tracer.Start(ctx, "validation.Validate",
		trace.WithAttributes(attribute.String("tin.jurisdiction", jurisdiction)))
	defer span.End()

	start := time.Now()
	result := v.Validate(input)

	outcome := audit.OutcomeValid
	if !result.Valid {
		outcome = tin.Kind(result.Err)
	}
	span.SetAttributes(attribute.String("tin.outcome", outcome))
	if s.metrics != nil {
		s.metrics.ObserveValidation(jurisdiction, outcome, time.Since(start))
	}

	event := audit.Event{
		Jurisdiction: jurisdiction,
		Outcome:      outcome,
		SubjectHash:  audit.HashSubject(result.Compact),
		Individual:   result.Individual,
		Company:      result.Company,
		RequestID:    requestcontext.RequestID(ctx),
		ClientIP:     requestcontext.ClientIP(ctx),
	}
	if err := s.publisher.Emit(ctx, event); err != nil {
		// The validation result stands even when the trail write fails.
		if s.metrics != nil {
			s.metrics.AuditPublishErrors.Inc()
		}
		s.logger.ErrorContext(ctx, "audit emit failed",
			"jurisdiction", jurisdiction,
			"request_id", event.RequestID,
			"error", err,
		)
	}

	return result, nil
}

// Compact normalizes an identifier without running checksum validation.
func (s *Service) Compact(_ context.Context, jurisdiction, input string) (string, error) {
	v, ok := s.registry.Get(jurisdiction)
	if !ok {
		return "", ErrUnknownJurisdiction
	}
	return v.Compact(input)
}

// Format renders an identifier in its display form.
func (s *Service) Format(_ context.Context, jurisdiction, input string) (string, error) {
	v, ok := s.registry.Get(jurisdiction)
	if !ok {
		return "", ErrUnknownJurisdiction
	}
	return v.Format(input)
}
