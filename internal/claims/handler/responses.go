package handler

import (
	"time"

	"claimeval/internal/claims"
)

// EvaluateResponse is the HTTP response for POST /claims/evaluate.
type EvaluateResponse struct {
	Approved    bool      `json:"approved"`
	Payout      float64   `json:"payout"`
	Reason      string    `json:"reason"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// IncidentTypesResponse is the HTTP response for GET /claims/incident-types.
type IncidentTypesResponse struct {
	IncidentTypes []string `json:"incident_types"`
}

// FromEvaluation converts a domain evaluation to an HTTP response.
func FromEvaluation(e *claims.Evaluation) *EvaluateResponse {
	return &EvaluateResponse{
		Approved:    e.Approved,
		Payout:      e.Payout,
		Reason:      string(e.Reason),
		EvaluatedAt: e.EvaluatedAt,
	}
}
