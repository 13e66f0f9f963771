package handler

import (
	"fmt"
	"strings"
	"time"

	"claimeval/internal/claims"
	dErrors "claimeval/pkg/domain-errors"
	platformstrings "claimeval/pkg/platform/strings"
	"claimeval/pkg/platform/validation"
)

// ClaimPayload is the wire form of a claim. The CLI reads the same shape
// from disk.
type ClaimPayload struct {
	PolicyID      string   `json:"policy_id"`
	IncidentType  string   `json:"incident_type" validate:"required"`
	IncidentDate  string   `json:"incident_date" validate:"required"`
	AmountClaimed *float64 `json:"amount_claimed" validate:"required,gte=0"`
}

// PolicyPayload is the wire form of a policy.
type PolicyPayload struct {
	PolicyID         string   `json:"policy_id"`
	StartDate        string   `json:"start_date" validate:"required"`
	EndDate          string   `json:"end_date" validate:"required"`
	Deductible       *float64 `json:"deductible" validate:"required,gte=0"`
	CoverageLimit    *float64 `json:"coverage_limit" validate:"required,gte=0"`
	CoveredIncidents []string `json:"covered_incidents"`
}

// EvaluateRequest is the HTTP request body for POST /claims/evaluate.
type EvaluateRequest struct {
	Claim  *ClaimPayload  `json:"claim" validate:"required"`
	Policy *PolicyPayload `json:"policy" validate:"required"`

	// Parsed values (populated by Validate)
	parsedClaim  claims.Claim
	parsedPolicy claims.Policy
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *EvaluateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := validation.Struct(r); err != nil {
		return err
	}

	claim, err := r.Claim.ToClaim()
	if err != nil {
		return err
	}
	policy, err := r.Policy.ToPolicy()
	if err != nil {
		return err
	}

	r.parsedClaim = claim
	r.parsedPolicy = policy
	return nil
}

// ParsedClaim returns the validated claim.
func (r *EvaluateRequest) ParsedClaim() claims.Claim {
	return r.parsedClaim
}

// ParsedPolicy returns the validated policy.
func (r *EvaluateRequest) ParsedPolicy() claims.Policy {
	return r.parsedPolicy
}

// ToClaim validates the payload and converts it to a domain claim with a
// UTC incident date.
func (p *ClaimPayload) ToClaim() (claims.Claim, error) {
	if err := validation.Struct(p); err != nil {
		return claims.Claim{}, err
	}

	incidentType, err := claims.ParseIncidentType(p.IncidentType)
	if err != nil {
		return claims.Claim{}, fieldError("claim.incident_type", err)
	}
	incidentDate, err := parseTimestamp("claim.incident_date", p.IncidentDate)
	if err != nil {
		return claims.Claim{}, err
	}

	return claims.Claim{
		PolicyID:      strings.TrimSpace(p.PolicyID),
		IncidentType:  incidentType,
		IncidentDate:  incidentDate,
		AmountClaimed: *p.AmountClaimed,
	}, nil
}

// ToPolicy validates the payload and converts it to a domain policy.
// Covered incidents are deduplicated; an inverted window is accepted and
// simply matches no incident.
func (p *PolicyPayload) ToPolicy() (claims.Policy, error) {
	if err := validation.Struct(p); err != nil {
		return claims.Policy{}, err
	}

	start, err := parseTimestamp("policy.start_date", p.StartDate)
	if err != nil {
		return claims.Policy{}, err
	}
	end, err := parseTimestamp("policy.end_date", p.EndDate)
	if err != nil {
		return claims.Policy{}, err
	}

	names := platformstrings.DedupeAndTrimLower(p.CoveredIncidents)
	covered := make([]claims.IncidentType, 0, len(names))
	for _, name := range names {
		it, err := claims.ParseIncidentType(name)
		if err != nil {
			return claims.Policy{}, fieldError("policy.covered_incidents", err)
		}
		covered = append(covered, it)
	}

	return claims.Policy{
		PolicyID:         strings.TrimSpace(p.PolicyID),
		StartDate:        start,
		EndDate:          end,
		Deductible:       *p.Deductible,
		CoverageLimit:    *p.CoverageLimit,
		CoveredIncidents: covered,
	}, nil
}

// parseTimestamp accepts RFC 3339 timestamps or bare YYYY-MM-DD dates
// (midnight UTC) and normalizes to UTC.
func parseTimestamp(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, dErrors.New(dErrors.CodeValidation,
		fmt.Sprintf("%s must be an RFC 3339 timestamp or YYYY-MM-DD date", field))
}

func fieldError(field string, err error) error {
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s: %s", field, dErrors.MessageOf(err)))
}
