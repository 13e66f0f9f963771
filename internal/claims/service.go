package claims

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"claimeval/internal/claims/metrics"
	dErrors "claimeval/pkg/domain-errors"
	"claimeval/pkg/requestcontext"
)

const tracerName = "claimeval/internal/claims"

// Evaluation is an EvaluationResult stamped with when it was produced.
type Evaluation struct {
	EvaluationResult
	EvaluatedAt time.Time
}

// Service runs claim evaluations with logging, metrics and tracing around
// the pure rule chain. It holds no mutable state and is safe for concurrent use.
type Service struct {
	rules   Rules
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics sink. A nil sink disables metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// WithRules replaces the evaluation rules.
func WithRules(rules Rules) Option {
	return func(s *Service) {
		s.rules = rules
	}
}

// NewService constructs a Service using the default rules.
func NewService(opts ...Option) *Service {
	s := &Service{
		rules:  DefaultRules(),
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate decides claim against policy. Denials are results, not errors;
// the only error is a context that is already done.
func (s *Service) Evaluate(ctx context.Context, claim Claim, policy Policy) (*Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "evaluation aborted: context cancelled")
	}

	ctx, span := s.tracer.Start(ctx, "claims.Evaluate", trace.WithAttributes(
		attribute.String("claim.policy_id", claim.PolicyID),
		attribute.String("claim.incident_type", claim.IncidentType.String()),
	))
	defer span.End()

	start := time.Now()
	result := s.rules.Evaluate(claim, policy)
	elapsed := time.Since(start)

	span.SetAttributes(
		attribute.Bool("claim.approved", result.Approved),
		attribute.String("claim.reason", string(result.Reason)),
		attribute.Float64("claim.payout", result.Payout),
	)

	s.metrics.ObserveEvaluateLatency(elapsed)
	s.metrics.IncrementOutcome(string(result.Reason))
	if result.Approved {
		s.metrics.ObservePayout(result.Payout)
	}

	if claim.PolicyID != policy.PolicyID {
		s.logger.DebugContext(ctx, "claim and policy ids differ",
			"request_id", requestcontext.RequestID(ctx),
			"claim_policy_id", claim.PolicyID,
			"policy_id", policy.PolicyID,
		)
	}

	s.logger.DebugContext(ctx, "claim evaluated",
		"request_id", requestcontext.RequestID(ctx),
		"policy_id", policy.PolicyID,
		"reason", result.Reason,
		"payout", result.Payout,
	)

	return &Evaluation{
		EvaluationResult: result,
		EvaluatedAt:      requestcontext.Now(ctx),
	}, nil
}
