package partnermock

import (
	"context"

	domain "lendbook/internal/domain/partner"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, p *domain.Partner) error
	GetByPartnerIDFn          func(ctx context.Context, partnerID string) (*domain.Partner, error)
	GetByPartnerIDForUpdateFn func(ctx context.Context, partnerID string) (*domain.Partner, error)
	SaveFn                    func(ctx context.Context, p *domain.Partner) error
	ListFn                    func(ctx context.Context) ([]*domain.Partner, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Partner) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *Repo) GetByPartnerID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	if m.GetByPartnerIDFn != nil {
		return m.GetByPartnerIDFn(ctx, partnerID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByPartnerIDForUpdate(ctx context.Context, partnerID string) (*domain.Partner, error) {
	if m.GetByPartnerIDForUpdateFn != nil {
		return m.GetByPartnerIDForUpdateFn(ctx, partnerID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, p *domain.Partner) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
func (m *Repo) List(ctx context.Context) ([]*domain.Partner, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
