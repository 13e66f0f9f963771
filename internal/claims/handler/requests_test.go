package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"claimeval/internal/claims"
	dErrors "claimeval/pkg/domain-errors"
)

// EvaluateRequestSuite tests EvaluateRequest validation and normalization.
type EvaluateRequestSuite struct {
	suite.Suite
}

func TestEvaluateRequestSuite(t *testing.T) {
	suite.Run(t, new(EvaluateRequestSuite))
}

func amount(f float64) *float64 { return &f }

func (s *EvaluateRequestSuite) validRequest() *EvaluateRequest {
	return &EvaluateRequest{
		Claim: &ClaimPayload{
			PolicyID:      "POL-1",
			IncidentType:  "accident",
			IncidentDate:  "2025-07-01T00:00:00Z",
			AmountClaimed: amount(500),
		},
		Policy: &PolicyPayload{
			PolicyID:         "POL-1",
			StartDate:        "2025-02-01T00:00:00Z",
			EndDate:          "2025-12-31T00:00:00Z",
			Deductible:       amount(300),
			CoverageLimit:    amount(400),
			CoveredIncidents: []string{"accident", "fire", "theft", "water damage"},
		},
	}
}

func (s *EvaluateRequestSuite) TestValidRequest() {
	req := s.validRequest()
	s.Require().NoError(req.Validate())

	claim := req.ParsedClaim()
	s.Equal(claims.IncidentAccident, claim.IncidentType)
	s.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), claim.IncidentDate)
	s.Equal(500.0, claim.AmountClaimed)

	policy := req.ParsedPolicy()
	s.Equal(300.0, policy.Deductible)
	s.Equal(400.0, policy.CoverageLimit)
	s.Len(policy.CoveredIncidents, 4)
}

func (s *EvaluateRequestSuite) TestNormalization() {
	s.Run("timestamps are converted to UTC", func() {
		req := s.validRequest()
		req.Claim.IncidentDate = "2025-07-01T02:00:00+02:00"
		s.Require().NoError(req.Validate())

		got := req.ParsedClaim().IncidentDate
		s.Equal(time.UTC, got.Location())
		s.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), got)
	})

	s.Run("bare dates are midnight UTC", func() {
		req := s.validRequest()
		req.Policy.StartDate = "2025-02-01"
		s.Require().NoError(req.Validate())
		s.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), req.ParsedPolicy().StartDate)
	})

	s.Run("covered incidents are deduplicated case-insensitively", func() {
		req := s.validRequest()
		req.Policy.CoveredIncidents = []string{"Fire", " fire", "THEFT", "fire"}
		s.Require().NoError(req.Validate())
		s.Equal([]claims.IncidentType{claims.IncidentFire, claims.IncidentTheft}, req.ParsedPolicy().CoveredIncidents)
	})

	s.Run("long lists of repeated incidents collapse to one entry", func() {
		req := s.validRequest()
		repeated := make([]string, 40)
		for i := range repeated {
			repeated[i] = "fire"
		}
		req.Policy.CoveredIncidents = repeated
		s.Require().NoError(req.Validate())
		s.Equal([]claims.IncidentType{claims.IncidentFire}, req.ParsedPolicy().CoveredIncidents)
	})

	s.Run("empty covered incidents is allowed", func() {
		req := s.validRequest()
		req.Policy.CoveredIncidents = nil
		s.Require().NoError(req.Validate())
		s.Empty(req.ParsedPolicy().CoveredIncidents)
	})

	s.Run("inverted window is allowed", func() {
		req := s.validRequest()
		req.Policy.StartDate, req.Policy.EndDate = req.Policy.EndDate, req.Policy.StartDate
		s.NoError(req.Validate())
	})

	s.Run("zero amounts are allowed", func() {
		req := s.validRequest()
		req.Claim.AmountClaimed = amount(0)
		req.Policy.Deductible = amount(0)
		req.Policy.CoverageLimit = amount(0)
		s.NoError(req.Validate())
	})
}

func (s *EvaluateRequestSuite) TestValidation() {
	tests := []struct {
		name    string
		mutate  func(r *EvaluateRequest)
		message string
	}{
		{"missing claim", func(r *EvaluateRequest) { r.Claim = nil }, "claim is required"},
		{"missing policy", func(r *EvaluateRequest) { r.Policy = nil }, "policy is required"},
		{"missing amount", func(r *EvaluateRequest) { r.Claim.AmountClaimed = nil }, "claim.amount_claimed is required"},
		{"negative amount", func(r *EvaluateRequest) { r.Claim.AmountClaimed = amount(-1) }, "claim.amount_claimed must be greater than or equal to 0"},
		{"negative deductible", func(r *EvaluateRequest) { r.Policy.Deductible = amount(-5) }, "policy.deductible must be greater than or equal to 0"},
		{"negative coverage limit", func(r *EvaluateRequest) { r.Policy.CoverageLimit = amount(-5) }, "policy.coverage_limit must be greater than or equal to 0"},
		{"unknown incident type", func(r *EvaluateRequest) { r.Claim.IncidentType = "flood" }, `claim.incident_type: unknown incident type "flood"`},
		{"unknown covered incident", func(r *EvaluateRequest) { r.Policy.CoveredIncidents = []string{"fire", "meteor"} }, `policy.covered_incidents: unknown incident type "meteor"`},
		{"malformed incident date", func(r *EvaluateRequest) { r.Claim.IncidentDate = "07/01/2025" }, "claim.incident_date must be an RFC 3339 timestamp or YYYY-MM-DD date"},
		{"missing end date", func(r *EvaluateRequest) { r.Policy.EndDate = "" }, "policy.end_date is required"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := s.validRequest()
			tt.mutate(req)

			err := req.Validate()
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation), "expected validation code, got %v", err)
			s.Contains(dErrors.MessageOf(err), tt.message)
		})
	}

	s.Run("nil request", func() {
		var req *EvaluateRequest
		err := req.Validate()
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *EvaluateRequestSuite) TestPayloadsStandAlone() {
	claim, err := s.validRequest().Claim.ToClaim()
	s.Require().NoError(err)
	s.Equal("POL-1", claim.PolicyID)

	bad := &PolicyPayload{StartDate: "2025-01-01"}
	_, err = bad.ToPolicy()
	s.Require().Error(err)
	s.Contains(err.Error(), "end_date is required")
}
