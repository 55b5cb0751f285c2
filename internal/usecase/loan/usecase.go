package loan

import (
	"context"
	"errors"

	domainClient "lendbook/internal/domain/client"
	domainLoan "lendbook/internal/domain/loan"
	domainPartner "lendbook/internal/domain/partner"
	"lendbook/internal/domain/uow"
	"lendbook/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	loanRepo   domainLoan.Repository
	clientRepo domainClient.Repository
	uow        uow.UnitOfWork
}

// NewUsecase: read paths go through the repos, originate runs inside the UoW.
func NewUsecase(loans domainLoan.Repository, clients domainClient.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loanRepo: loans, clientRepo: clients, uow: tx}
}

// Validate checks a funding allocation without committing anything. Partner
// balances are read as of now; Originate re-checks inside its transaction.
func (u *Usecase) Validate(ctx context.Context, ins []ContributionInput, requestedTotal float64) error {
	if u.uow == nil {
		return errors.New("unit of work not configured")
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return domainLoan.ValidateContributions(toDomainInputs(ins), requestedTotal, lookupFrom(ctx, r.Partners, nil))
	})
}

// Originate validates the allocation, builds the loan, and debits every
// funding partner in one transaction, all-or-nothing. Each partner's available
// cash drops by its contribution, its contributed capital rises by the same
// amount, and its earnings rise by its anticipated interest.
func (u *Usecase) Originate(ctx context.Context, in OriginateInput) (*LoanDTO, error) {
	if u.uow == nil {
		return nil, errors.New("unit of work not configured")
	}

	if _, err := u.clientRepo.GetByClientID(ctx, in.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainClient.ErrNotFound
		}
		return nil, err
	}

	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		inputs := toDomainInputs(in.Contributions)

		// Lock every funding partner up front; validation reads the locked rows.
		locked := make(map[string]*domainPartner.Partner, len(inputs))
		if err := domainLoan.ValidateContributions(inputs, in.RequestedAmount, lookupFrom(ctx, r.Partners, locked)); err != nil {
			return err
		}

		l, err := domainLoan.Originate(in.ClientID, inputs, in.RequestedAmount, in.StartDate, in.TermValue, domainLoan.TermUnit(in.TermUnit))
		if err != nil {
			return err
		}
		l.LoanID = id.NewID32()
		l.CollateralPhotoURL = in.CollateralPhotoURL
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		for _, c := range l.Contributions {
			p := locked[c.PartnerID]
			p.AvailableCash -= c.Amount
			p.ContributedCapital += c.Amount
			p.TotalEarnings += c.AnticipatedInterest
			if err := r.Partners.Save(ctx, p); err != nil {
				return err
			}
		}

		dto = ToDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loanRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return ToDTO(l), nil
}

// List returns loans filtered by state and/or funding partner. The partner
// filter is applied in memory: contributions live in a JSON column.
func (u *Usecase) List(ctx context.Context, f ListFilter) ([]*LoanDTO, error) {
	ls, err := u.loanRepo.List(ctx, domainLoan.State(f.State))
	if err != nil {
		return nil, err
	}
	out := make([]*LoanDTO, 0, len(ls))
	for _, l := range ls {
		if f.PartnerID != "" {
			if _, ok := l.FundedBy(f.PartnerID); !ok {
				continue
			}
		}
		out = append(out, ToDTO(l))
	}
	return out, nil
}

// lookupFrom adapts a partner repository to the validator's lookup contract.
// When sink is non-nil, fetches lock the row and are retained for the
// mutation phase of the same transaction.
func lookupFrom(ctx context.Context, repo domainPartner.Repository, sink map[string]*domainPartner.Partner) domainLoan.PartnerLookup {
	return func(partnerID string) (domainLoan.PartnerFunds, bool) {
		var (
			p   *domainPartner.Partner
			err error
		)
		if sink != nil {
			p, err = repo.GetByPartnerIDForUpdate(ctx, partnerID)
		} else {
			p, err = repo.GetByPartnerID(ctx, partnerID)
		}
		if err != nil {
			return domainLoan.PartnerFunds{}, false
		}
		if sink != nil {
			sink[partnerID] = p
		}
		return domainLoan.PartnerFunds{Name: p.Name, AvailableCash: p.AvailableCash}, true
	}
}
