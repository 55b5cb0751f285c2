package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "lendbook/internal/domain/partner"
	"lendbook/pkg/id"

	"gorm.io/gorm"
)

type partnerSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	PartnerID          string         `gorm:"size:32;column:partner_id"`
	Name               string         `gorm:"size:255;column:name"`
	ContributedCapital float64        `gorm:"column:contributed_capital"`
	AvailableCash      float64        `gorm:"column:available_cash"`
	TotalEarnings      float64        `gorm:"column:total_earnings"`
	TopUps             string         `gorm:"type:text;column:top_ups"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (partnerSQLite) TableName() string { return "partners" }

func openPartnerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := openTestDB(t)
	if err := db.AutoMigrate(&partnerSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makePartner(partnerID string) *domain.Partner {
	p := &domain.Partner{PartnerID: partnerID, Name: "Alpha Capital"}
	_ = p.ApplyTopUp(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 500_000, "initial capital")
	return p
}

func TestPartner_CreateAndGet(t *testing.T) {
	db := openPartnerTestDB(t)
	repo := NewPartnerRepository(db)
	ctx := context.Background()

	partnerID := id.NewID32()
	if err := repo.Create(ctx, makePartner(partnerID)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByPartnerID(ctx, partnerID)
	if err != nil {
		t.Fatalf("GetByPartnerID: %v", err)
	}
	if got.Name != "Alpha Capital" || got.AvailableCash != 500_000 {
		t.Errorf("unexpected partner: %+v", got)
	}
	// The top-up ledger survives the JSON column.
	if len(got.TopUps) != 1 || got.TopUps[0].Description != "initial capital" {
		t.Errorf("top-up ledger did not round-trip: %+v", got.TopUps)
	}
}

func TestPartner_SaveUpdatesBalances(t *testing.T) {
	db := openPartnerTestDB(t)
	repo := NewPartnerRepository(db)
	ctx := context.Background()

	partnerID := id.NewID32()
	p := makePartner(partnerID)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	p.AvailableCash -= 200_000
	p.TotalEarnings += 8_000
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByPartnerID(ctx, partnerID)
	if err != nil {
		t.Fatalf("GetByPartnerID: %v", err)
	}
	if got.AvailableCash != 300_000 || got.TotalEarnings != 8_000 {
		t.Errorf("balances not updated: %+v", got)
	}
}

func TestPartner_GetNotFound(t *testing.T) {
	db := openPartnerTestDB(t)
	repo := NewPartnerRepository(db)

	_, err := repo.GetByPartnerID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestPartner_List(t *testing.T) {
	db := openPartnerTestDB(t)
	repo := NewPartnerRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, makePartner(id.NewID32())); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	out, err := repo.List(ctx)
	if err != nil || len(out) != 3 {
		t.Fatalf("List: %v (%d)", err, len(out))
	}
}
