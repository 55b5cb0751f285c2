package partner

import (
	"context"
	"errors"
	"time"

	"lendbook/internal/domain/partner"
	"lendbook/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo partner.Repository }

func NewUsecase(r partner.Repository) *Usecase { return &Usecase{repo: r} }

type CreatePartnerInput struct {
	Name           string  `json:"name"`
	InitialCapital float64 `json:"initial_capital"`
}

type TopUpInput struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type PartnerDTO struct {
	PartnerID          string          `json:"partner_id"`
	Name               string          `json:"name"`
	ContributedCapital float64         `json:"contributed_capital"`
	AvailableCash      float64         `json:"available_cash"`
	TotalEarnings      float64         `json:"total_earnings"`
	TopUps             []partner.TopUp `json:"top_ups"`
	CreatedAt          time.Time       `json:"created_at"`
}

func toDTO(p *partner.Partner) *PartnerDTO {
	return &PartnerDTO{
		PartnerID:          p.PartnerID,
		Name:               p.Name,
		ContributedCapital: p.ContributedCapital,
		AvailableCash:      p.AvailableCash,
		TotalEarnings:      p.TotalEarnings,
		TopUps:             p.TopUps,
		CreatedAt:          p.CreatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, in CreatePartnerInput) (*PartnerDTO, error) {
	if in.Name == "" {
		return nil, errors.New("partner name is required")
	}
	if in.InitialCapital < 0 {
		return nil, partner.ErrNonPositiveAmount
	}

	p := &partner.Partner{
		PartnerID: id.NewID32(),
		Name:      in.Name,
	}
	if in.InitialCapital > 0 {
		_ = p.ApplyTopUp(time.Now().UTC(), in.InitialCapital, "initial capital")
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

// TopUp appends a capital contribution to the partner's ledger and raises its
// contributed capital and available cash together.
func (u *Usecase) TopUp(ctx context.Context, partnerID string, in TopUpInput) (*PartnerDTO, error) {
	if in.Amount <= 0 {
		return nil, partner.ErrNonPositiveAmount
	}

	p, err := u.repo.GetByPartnerIDForUpdate(ctx, partnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, partner.ErrNotFound
		}
		return nil, err
	}
	if err := p.ApplyTopUp(time.Now().UTC(), in.Amount, in.Description); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, partnerID string) (*PartnerDTO, error) {
	p, err := u.repo.GetByPartnerID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, partner.ErrNotFound
		}
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) List(ctx context.Context) ([]*PartnerDTO, error) {
	ps, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*PartnerDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, toDTO(p))
	}
	return out, nil
}
