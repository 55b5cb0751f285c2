package partner

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("partner not found")
	ErrNonPositiveAmount = errors.New("top-up amount must be greater than zero")
)

// TopUp is one entry in a partner's capital ledger. The ledger is append-only.
type TopUp struct {
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
}

type Partner struct {
	ID                 uint64         `gorm:"primaryKey;column:id" json:"-"`
	PartnerID          string         `gorm:"size:32;uniqueIndex:ux_partners_partner_id_active" json:"partner_id"`
	Name               string         `gorm:"size:255" json:"name"`
	ContributedCapital float64        `gorm:"type:decimal(18,2)" json:"contributed_capital"`
	AvailableCash      float64        `gorm:"type:decimal(18,2)" json:"available_cash"`
	TotalEarnings      float64        `gorm:"type:decimal(18,2)" json:"total_earnings"`
	TopUps             []TopUp        `gorm:"serializer:json;type:json" json:"top_ups"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Partner) TableName() string { return "partners" }

// ApplyTopUp raises both the cumulative contributed capital and the cash
// available for funding, and appends the ledger entry.
func (p *Partner) ApplyTopUp(at time.Time, amount float64, description string) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	p.ContributedCapital += amount
	p.AvailableCash += amount
	p.TopUps = append(p.TopUps, TopUp{Date: at, Amount: amount, Description: description})
	return nil
}

// MonthlyTopUps sums the ledger entries recorded in the given calendar month.
func (p *Partner) MonthlyTopUps(year int, month time.Month) float64 {
	var total float64
	for _, t := range p.TopUps {
		if t.Date.Year() == year && t.Date.Month() == month {
			total += t.Amount
		}
	}
	return total
}
