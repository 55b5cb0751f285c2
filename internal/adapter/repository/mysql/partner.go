package mysql

import (
	"context"

	partnerDomain "lendbook/internal/domain/partner"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PartnerRepository struct{ db *gorm.DB }

func NewPartnerRepository(db *gorm.DB) *PartnerRepository { return &PartnerRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *PartnerRepository) Tx(ctx context.Context, fn func(repo partnerDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PartnerRepository{db: tx})
	})
}

func (r *PartnerRepository) Create(ctx context.Context, p *partnerDomain.Partner) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PartnerRepository) Save(ctx context.Context, p *partnerDomain.Partner) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PartnerRepository) GetByPartnerID(ctx context.Context, partnerID string) (*partnerDomain.Partner, error) {
	var out partnerDomain.Partner
	res := r.db.WithContext(ctx).Where("partner_id = ?", partnerID).First(&out)
	return &out, res.Error
}

func (r *PartnerRepository) GetByPartnerIDForUpdate(ctx context.Context, partnerID string) (*partnerDomain.Partner, error) {
	var out partnerDomain.Partner
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("partner_id = ?", partnerID).
		First(&out)
	return &out, res.Error
}

func (r *PartnerRepository) List(ctx context.Context) ([]*partnerDomain.Partner, error) {
	var out []*partnerDomain.Partner
	res := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&out)
	return out, res.Error
}
