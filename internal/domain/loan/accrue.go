package loan

// AccruedInterest is the simple interest currently owed on a balance.
// Evaluated fresh on every call; nothing accumulates between calls.
func AccruedInterest(balance, rate float64) float64 {
	return balance * rate / 100
}

// AccruedInterest returns the interest this contribution currently owes.
func (c *Contribution) AccruedInterest() float64 {
	return AccruedInterest(c.RemainingBalance, c.Rate)
}

// interestLine is one lender's view of the loan at allocation time. For a
// multi-partner loan there is one line per contribution; a legacy
// single-lender loan collapses to one line over the loan-level balance.
type interestLine struct {
	partnerID    string
	funded       float64
	balance      float64
	interest     float64
	contribution *Contribution
}

func (l *Loan) interestLines() []interestLine {
	if l.shape() == ShapeMulti {
		lines := make([]interestLine, 0, len(l.Contributions))
		for i := range l.Contributions {
			c := &l.Contributions[i]
			lines = append(lines, interestLine{
				partnerID:    c.PartnerID,
				funded:       c.Amount,
				balance:      c.RemainingBalance,
				interest:     c.AccruedInterest(),
				contribution: c,
			})
		}
		return lines
	}
	return []interestLine{{
		partnerID: l.LegacyPartnerID,
		funded:    l.RequestedAmount,
		balance:   l.OutstandingBalance,
		interest:  AccruedInterest(l.OutstandingBalance, l.LegacyRate),
	}}
}

// AccruedInterest returns the total interest currently owed on the loan
// across all lenders, honoring the legacy single-lender path.
func (l *Loan) AccruedInterest() float64 {
	var total float64
	for _, ln := range l.interestLines() {
		total += ln.interest
	}
	return total
}
