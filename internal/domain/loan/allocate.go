package loan

import (
	"math"
	"time"
)

// PartnerDelta is the balance side effect one payment implies for one
// partner. The caller must apply every delta of a payment together with the
// loan update, all-or-nothing.
type PartnerDelta struct {
	PartnerID     string
	CashDelta     float64
	EarningsDelta float64
}

// AllocatePayment splits a payment of amount into interest and principal and
// distributes both across the loan's lenders: interest proportional to each
// lender's currently owed interest, principal proportional to each lender's
// original funded amount. The payment record is appended to the loan's
// history and the updated balances are written back; the returned deltas are
// the partner-side effects the caller still has to apply.
//
// A zero amount is legal and records a payment with an all-zero distribution.
// Payments on a paid loan and negative amounts fail closed. In the degenerate
// case where no funded amount exists to base a principal split on, the excess
// is recorded as unapplied rather than distributed.
func (l *Loan) AllocatePayment(amount float64, at time.Time) (*Payment, []PartnerDelta, error) {
	if amount < 0 {
		return nil, nil, ErrNegativeAmount
	}
	if l.State == StatePaid {
		return nil, nil, ErrAlreadyPaid
	}

	lines := l.interestLines()

	var totalOwed float64
	for _, ln := range lines {
		totalOwed += ln.interest
	}
	toInterest := math.Min(amount, totalOwed)
	toPrincipal := math.Max(0, amount-totalOwed)

	// Principal is split by original funded amounts, not remaining balances.
	var fundedTotal float64
	for _, ln := range lines {
		fundedTotal += ln.funded
	}

	pay := Payment{
		Date:          at,
		Total:         amount,
		InterestPaid:  toInterest,
		PrincipalPaid: toPrincipal,
		Distribution:  make([]DistributionEntry, 0, len(lines)),
	}
	deltas := make([]PartnerDelta, 0, len(lines))

	for _, ln := range lines {
		var interestShare, principalShare float64
		if totalOwed > 0 {
			interestShare = ln.interest / totalOwed
		}
		if fundedTotal > 0 {
			principalShare = ln.funded / fundedTotal
		}

		interestRecv := toInterest * interestShare
		principalRecv := toPrincipal * principalShare

		balance := ln.balance - principalRecv
		if balance < 0 {
			balance = 0
		}
		if ln.contribution != nil {
			ln.contribution.RemainingBalance = balance
		}

		pay.Distribution = append(pay.Distribution, DistributionEntry{
			PartnerID:        ln.partnerID,
			Interest:         interestRecv,
			Principal:        principalRecv,
			RemainingBalance: balance,
		})
		deltas = append(deltas, PartnerDelta{
			PartnerID:     ln.partnerID,
			CashDelta:     interestRecv + principalRecv,
			EarningsDelta: interestRecv,
		})
	}

	if fundedTotal > 0 {
		l.OutstandingBalance -= toPrincipal
	} else {
		pay.Unapplied = toPrincipal
		pay.PrincipalPaid = 0
	}

	// Paid clamp: residues inside the tolerance band are written off.
	if l.OutstandingBalance <= Tolerance {
		l.State = StatePaid
		l.StateUpdatedAt = time.Now().UTC()
		l.OutstandingBalance = 0
		for i := range l.Contributions {
			l.Contributions[i].RemainingBalance = 0
		}
	}

	l.Payments = append(l.Payments, pay)
	return &l.Payments[len(l.Payments)-1], deltas, nil
}
