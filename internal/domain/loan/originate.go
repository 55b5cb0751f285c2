package loan

import "time"

// AnticipatedInterest is the interest deducted up front from a contribution
// at origination.
func AnticipatedInterest(amount, rate float64) float64 {
	return amount * rate / 100
}

// NewContribution builds a contribution record for one funding partner:
// anticipated interest fixed now, remaining balance starting at the full
// funded amount.
func NewContribution(partnerID string, amount, rate float64) Contribution {
	return Contribution{
		PartnerID:           partnerID,
		Amount:              amount,
		Rate:                rate,
		AnticipatedInterest: AnticipatedInterest(amount, rate),
		RemainingBalance:    amount,
	}
}

// Disbursed is the partner's funded amount minus its anticipated interest:
// what is actually advanced to the borrower on its behalf.
func (c Contribution) Disbursed() float64 {
	return c.Amount - c.AnticipatedInterest
}

// DueDate advances start by (value, unit). Month and year arithmetic uses the
// calendar's native overflow (Jan 31 + 1 month rolls into March); no
// end-of-month clamping.
func DueDate(start time.Time, value int, unit TermUnit) (time.Time, error) {
	switch unit {
	case TermDays:
		return start.AddDate(0, 0, value), nil
	case TermMonths:
		return start.AddDate(0, value, 0), nil
	case TermYears:
		return start.AddDate(value, 0, 0), nil
	default:
		return time.Time{}, ErrBadTermUnit
	}
}

// Originate builds a new active loan from validated contribution tuples.
// Totals are plain sums across partners, order-independent. The caller owns
// the side effects on partner balances and must apply them atomically with
// the loan creation.
func Originate(clientID string, inputs []ContributionInput, requestedTotal float64, start time.Time, termValue int, unit TermUnit) (*Loan, error) {
	due, err := DueDate(start, termValue, unit)
	if err != nil {
		return nil, err
	}

	contributions := make([]Contribution, 0, len(inputs))
	var totalInterest float64
	for _, in := range inputs {
		c := NewContribution(in.PartnerID, in.Amount, in.Rate)
		totalInterest += c.AnticipatedInterest
		contributions = append(contributions, c)
	}

	l := &Loan{
		ClientID:                 clientID,
		Contributions:            contributions,
		RequestedAmount:          requestedTotal,
		DisbursedAmount:          requestedTotal - totalInterest,
		TotalAnticipatedInterest: totalInterest,
		OutstandingBalance:       requestedTotal,
		TermValue:                termValue,
		TermUnit:                 unit,
		StartDate:                start,
		DueDate:                  due,
		State:                    StateActive,
		Shape:                    ShapeMulti,
		StateUpdatedAt:           time.Now().UTC(),
	}
	return l, nil
}
