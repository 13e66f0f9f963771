package claims

// IsWithinWindow reports whether the incident happened while the policy was
// active. Start is inclusive and end is exclusive.
func IsWithinWindow(claim Claim, policy Policy) bool {
	return !claim.IncidentDate.Before(policy.StartDate) && claim.IncidentDate.Before(policy.EndDate)
}

// IsIncidentCovered reports whether the claim's incident type is among the
// policy's covered incidents. Order and duplicates in the list do not matter.
func IsIncidentCovered(claim Claim, policy Policy) bool {
	for _, covered := range policy.CoveredIncidents {
		if covered == claim.IncidentType {
			return true
		}
	}
	return false
}

// CalculatePayout subtracts the deductible and then caps the remainder at the
// coverage limit. The result may be zero or negative; callers decide what
// that means.
func CalculatePayout(claim Claim, policy Policy) float64 {
	payout := claim.AmountClaimed - policy.Deductible
	if payout > policy.CoverageLimit {
		return policy.CoverageLimit
	}
	return payout
}

// Rules bundles the three checks the evaluator delegates to.
type Rules struct {
	WithinWindow func(Claim, Policy) bool
	Covered      func(Claim, Policy) bool
	Payout       func(Claim, Policy) float64
}

// DefaultRules returns the production checks.
func DefaultRules() Rules {
	return Rules{
		WithinWindow: IsWithinWindow,
		Covered:      IsIncidentCovered,
		Payout:       CalculatePayout,
	}
}

// Evaluate applies the rule chain to a claim.
// Rule priority (fail-fast):
//  1. Policy window - an inactive policy pays nothing
//  2. Incident coverage
//  3. Payout must be positive
//
// A non-positive payout is a denial, not an approval for zero.
func (r Rules) Evaluate(claim Claim, policy Policy) EvaluationResult {
	if !r.WithinWindow(claim, policy) {
		return denied(ReasonPolicyInactive)
	}

	if !r.Covered(claim, policy) {
		return denied(ReasonNotCovered)
	}

	payout := r.Payout(claim, policy)
	if payout <= 0 {
		return denied(ReasonZeroPayout)
	}

	return approved(payout)
}

// EvaluateClaim decides a claim against its policy with the default rules.
// This is pure domain logic - no I/O, no side effects.
func EvaluateClaim(claim Claim, policy Policy) EvaluationResult {
	return DefaultRules().Evaluate(claim, policy)
}
