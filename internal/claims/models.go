package claims

import (
	"fmt"
	"strings"
	"time"

	dErrors "claimeval/pkg/domain-errors"
)

// IncidentType is the category of loss event a claim reports.
type IncidentType string

const (
	IncidentAccident    IncidentType = "accident"
	IncidentTheft       IncidentType = "theft"
	IncidentFire        IncidentType = "fire"
	IncidentWaterDamage IncidentType = "water damage"
)

var incidentTypes = []IncidentType{
	IncidentAccident,
	IncidentTheft,
	IncidentFire,
	IncidentWaterDamage,
}

// IncidentTypes returns the closed set of incident types in a stable order.
func IncidentTypes() []IncidentType {
	out := make([]IncidentType, len(incidentTypes))
	copy(out, incidentTypes)
	return out
}

// IsValid reports whether t is one of the known incident types.
func (t IncidentType) IsValid() bool {
	switch t {
	case IncidentAccident, IncidentTheft, IncidentFire, IncidentWaterDamage:
		return true
	}
	return false
}

func (t IncidentType) String() string {
	return string(t)
}

// ParseIncidentType accepts the canonical names case-insensitively and
// ignores surrounding whitespace.
func ParseIncidentType(s string) (IncidentType, error) {
	t := IncidentType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown incident type %q", s))
	}
	return t, nil
}

// Claim is a single request for payment tied to one incident. Amounts are in
// the policy's currency; IncidentDate is expected in UTC.
type Claim struct {
	PolicyID      string
	IncidentType  IncidentType
	IncidentDate  time.Time
	AmountClaimed float64
}

// Policy holds the coverage terms a claim is judged against. The active
// window is [StartDate, EndDate).
type Policy struct {
	PolicyID         string
	StartDate        time.Time
	EndDate          time.Time
	Deductible       float64
	CoverageLimit    float64
	CoveredIncidents []IncidentType
}

// ReasonCode explains an evaluation outcome.
type ReasonCode string

const (
	ReasonApproved       ReasonCode = "APPROVED"
	ReasonPolicyInactive ReasonCode = "POLICY_INACTIVE"
	ReasonNotCovered     ReasonCode = "NOT_COVERED"
	ReasonZeroPayout     ReasonCode = "ZERO_PAYOUT"
)

// ReasonCodes lists every reason code, in evaluation order.
func ReasonCodes() []ReasonCode {
	return []ReasonCode{ReasonPolicyInactive, ReasonNotCovered, ReasonZeroPayout, ReasonApproved}
}

// EvaluationResult is the outcome of evaluating one claim.
// Payout is always 0 unless Approved, and Reason is ReasonApproved iff Approved.
type EvaluationResult struct {
	Approved bool
	Payout   float64
	Reason   ReasonCode
}

func denied(reason ReasonCode) EvaluationResult {
	return EvaluationResult{Approved: false, Payout: 0, Reason: reason}
}

func approved(payout float64) EvaluationResult {
	return EvaluationResult{Approved: true, Payout: payout, Reason: ReasonApproved}
}
