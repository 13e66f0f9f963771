package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"claimeval/internal/claims"
	dErrors "claimeval/pkg/domain-errors"
	"claimeval/pkg/platform/httputil"
	"claimeval/pkg/requestcontext"
)

// Service defines the interface for claim evaluation.
type Service interface {
	Evaluate(ctx context.Context, claim claims.Claim, policy claims.Policy) (*claims.Evaluation, error)
}

// Handler wires claim endpoints to the claim service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a claim handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts claim endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/claims/evaluate", h.HandleEvaluate)
	r.Get("/claims/incident-types", h.HandleIncidentTypes)
}

// HandleEvaluate handles POST /claims/evaluate requests. Every decision,
// including a denial, is a 200.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[EvaluateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	claim, policy := req.ParsedClaim(), req.ParsedPolicy()
	result, err := h.service.Evaluate(ctx, claim, policy)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeTimeout) {
			h.logger.WarnContext(ctx, "claim evaluation aborted",
				"request_id", requestID,
				"policy_id", policy.PolicyID,
				"error", err,
			)
		} else {
			h.logger.ErrorContext(ctx, "claim evaluation failed",
				"request_id", requestID,
				"policy_id", policy.PolicyID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "claim evaluated",
		"request_id", requestID,
		"policy_id", policy.PolicyID,
		"incident_type", claim.IncidentType,
		"approved", result.Approved,
		"reason", result.Reason,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromEvaluation(result))
}

// HandleIncidentTypes handles GET /claims/incident-types.
func (h *Handler) HandleIncidentTypes(w http.ResponseWriter, r *http.Request) {
	types := claims.IncidentTypes()
	resp := IncidentTypesResponse{IncidentTypes: make([]string, 0, len(types))}
	for _, t := range types {
		resp.IncidentTypes = append(resp.IncidentTypes, t.String())
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
