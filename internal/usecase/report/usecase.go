package report

import (
	"context"
	"errors"
	"time"

	domainLoan "lendbook/internal/domain/loan"
	domainPartner "lendbook/internal/domain/partner"

	"gorm.io/gorm"
)

type Usecase struct {
	loanRepo    domainLoan.Repository
	partnerRepo domainPartner.Repository
}

func NewUsecase(loans domainLoan.Repository, partners domainPartner.Repository) *Usecase {
	return &Usecase{loanRepo: loans, partnerRepo: partners}
}

// MonthlyDTO is a partner's report for one calendar month.
type MonthlyDTO struct {
	PartnerID     string  `json:"partner_id"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Earnings      float64 `json:"earnings"`
	Contributions float64 `json:"contributions"`
}

type FundedDTO struct {
	PartnerID   string  `json:"partner_id"`
	TotalFunded float64 `json:"total_funded"`
}

func (u *Usecase) partner(ctx context.Context, partnerID string) (*domainPartner.Partner, error) {
	p, err := u.partnerRepo.GetByPartnerID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainPartner.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// MonthlyEarnings sums the interest a partner received from payments dated in
// the given month, across every loan's payment history.
func (u *Usecase) MonthlyEarnings(ctx context.Context, partnerID string, year int, month time.Month) (float64, error) {
	if _, err := u.partner(ctx, partnerID); err != nil {
		return 0, err
	}
	loans, err := u.loanRepo.List(ctx, "")
	if err != nil {
		return 0, err
	}
	return domainLoan.MonthlyEarnings(loans, partnerID, year, month), nil
}

// MonthlyContributions sums the partner's own capital top-ups in the month.
func (u *Usecase) MonthlyContributions(ctx context.Context, partnerID string, year int, month time.Month) (float64, error) {
	p, err := u.partner(ctx, partnerID)
	if err != nil {
		return 0, err
	}
	return p.MonthlyTopUps(year, month), nil
}

// Monthly bundles earnings and contributions for one endpoint call.
func (u *Usecase) Monthly(ctx context.Context, partnerID string, year int, month time.Month) (*MonthlyDTO, error) {
	p, err := u.partner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	loans, err := u.loanRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	return &MonthlyDTO{
		PartnerID:     partnerID,
		Year:          year,
		Month:         int(month),
		Earnings:      domainLoan.MonthlyEarnings(loans, partnerID, year, month),
		Contributions: p.MonthlyTopUps(year, month),
	}, nil
}

// TotalFunded sums the partner's live principal across active loans.
func (u *Usecase) TotalFunded(ctx context.Context, partnerID string) (*FundedDTO, error) {
	if _, err := u.partner(ctx, partnerID); err != nil {
		return nil, err
	}
	loans, err := u.loanRepo.List(ctx, domainLoan.StateActive)
	if err != nil {
		return nil, err
	}
	return &FundedDTO{
		PartnerID:   partnerID,
		TotalFunded: domainLoan.TotalFundedBy(loans, partnerID),
	}, nil
}
