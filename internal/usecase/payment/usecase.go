package payment

import (
	"context"
	"errors"
	"time"

	domainLoan "lendbook/internal/domain/loan"
	domainPartner "lendbook/internal/domain/partner"
	"lendbook/internal/domain/uow"
	ucloan "lendbook/internal/usecase/loan"

	"gorm.io/gorm"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type AllocateInput struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

type AllocateResult struct {
	Loan    *ucloan.LoanDTO    `json:"loan"`
	Payment *domainLoan.Payment `json:"payment"`
}

// Allocate applies a payment to a loan: splits it into interest and
// principal, distributes both across the funding partners, appends the
// payment record, and credits every partner's cash and earnings. Runs inside
// one loan-locked transaction; either every balance moves or none does.
func (u *Usecase) Allocate(ctx context.Context, loanID string, in AllocateInput) (*AllocateResult, error) {
	if u.uow == nil {
		return nil, errors.New("unit of work not configured")
	}

	at := in.Date
	if at.IsZero() {
		at = time.Now().UTC()
	}

	var out *AllocateResult
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		pay, deltas, err := l.AllocatePayment(in.Amount, at)
		if err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		for _, d := range deltas {
			p, err := r.Partners.GetByPartnerIDForUpdate(ctx, d.PartnerID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domainPartner.ErrNotFound
				}
				return err
			}
			p.AvailableCash += d.CashDelta
			p.TotalEarnings += d.EarningsDelta
			if err := r.Partners.Save(ctx, p); err != nil {
				return err
			}
		}

		out = &AllocateResult{Loan: ucloan.ToDTO(l), Payment: pay}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}
