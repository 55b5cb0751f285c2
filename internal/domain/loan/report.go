package loan

import "time"

// MonthlyEarnings folds a partner's interest income for one calendar month
// out of every loan's payment history. Multi-partner loans contribute the
// partner's distribution slice; legacy loans attribute the whole interest
// portion to their single lender.
func MonthlyEarnings(loans []*Loan, partnerID string, year int, month time.Month) float64 {
	var total float64
	for _, l := range loans {
		multi := l.shape() == ShapeMulti
		for _, p := range l.Payments {
			if p.Date.Year() != year || p.Date.Month() != month {
				continue
			}
			if multi {
				for _, d := range p.Distribution {
					if d.PartnerID == partnerID {
						total += d.Interest
					}
				}
			} else if l.LegacyPartnerID == partnerID {
				total += p.InterestPaid
			}
		}
	}
	return total
}

// TotalFundedBy sums the partner's originally funded amounts across all
// active loans where it holds a live contribution.
func TotalFundedBy(loans []*Loan, partnerID string) float64 {
	var total float64
	for _, l := range loans {
		if l.State != StateActive {
			continue
		}
		if funded, ok := l.FundedBy(partnerID); ok {
			total += funded
		}
	}
	return total
}
