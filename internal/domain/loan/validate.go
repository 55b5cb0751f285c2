package loan

import (
	"fmt"
	"math"
)

// ContributionInput is a proposed funding tuple, before origination.
type ContributionInput struct {
	PartnerID string
	Amount    float64
	Rate      float64
}

// PartnerFunds is the slice of partner state the validator needs.
type PartnerFunds struct {
	Name          string
	AvailableCash float64
}

// PartnerLookup resolves a partner id to its funds snapshot. The second
// return is false when the partner does not exist.
type PartnerLookup func(partnerID string) (PartnerFunds, bool)

// ValidateContributions checks a proposed funding allocation against the
// requested total and each partner's available cash. Checks run in a fixed
// order so rejection messages are deterministic: non-empty list, total within
// tolerance, no duplicate partners, then per-partner existence and funds in
// input order. Returns nil on acceptance, a *ValidationError otherwise.
func ValidateContributions(inputs []ContributionInput, requestedTotal float64, lookup PartnerLookup) error {
	if len(inputs) == 0 {
		return &ValidationError{Reason: "at least one funding partner required"}
	}

	var total float64
	for _, in := range inputs {
		total += in.Amount
	}
	if math.Abs(requestedTotal-total) > Tolerance {
		return &ValidationError{Reason: fmt.Sprintf(
			"contribution total %.2f does not match requested amount %.2f", total, requestedTotal)}
	}

	seen := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		if _, dup := seen[in.PartnerID]; dup {
			return &ValidationError{Reason: fmt.Sprintf("partner %s appears more than once", in.PartnerID)}
		}
		seen[in.PartnerID] = struct{}{}
	}

	for _, in := range inputs {
		funds, ok := lookup(in.PartnerID)
		if !ok {
			return &ValidationError{Reason: fmt.Sprintf("partner %s not found", in.PartnerID)}
		}
		if funds.AvailableCash < in.Amount {
			return &ValidationError{Reason: fmt.Sprintf("%s does not have enough available cash", funds.Name)}
		}
	}

	return nil
}
