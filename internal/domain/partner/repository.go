package partner

import "context"

type Repository interface {
	Create(ctx context.Context, p *Partner) error
	GetByPartnerID(ctx context.Context, partnerID string) (*Partner, error)
	GetByPartnerIDForUpdate(ctx context.Context, partnerID string) (*Partner, error)
	Save(ctx context.Context, p *Partner) error
	List(ctx context.Context) ([]*Partner, error)
}
