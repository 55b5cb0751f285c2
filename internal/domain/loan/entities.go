package loan

import (
	"time"

	"gorm.io/gorm"
)

type State string

const (
	StateActive  State = "active"
	StatePaid    State = "paid"
	StateOverdue State = "overdue"
)

type TermUnit string

const (
	TermDays   TermUnit = "days"
	TermMonths TermUnit = "months"
	TermYears  TermUnit = "years"
)

// FundingShape tags how a loan's funding is modeled. Legacy rows carry a flat
// partner id + rate instead of a contributions array; the tag is resolved once
// when the row is loaded, never re-sniffed per calculation.
type FundingShape int

const (
	ShapeUnknown FundingShape = iota
	ShapeMulti
	ShapeSingle
)

// Tolerance is the currency rounding band: contribution totals must match the
// requested amount within it, and a loan whose outstanding balance falls
// inside it is considered fully paid.
const Tolerance = 0.01

// Contribution is one partner's funded share of a loan. AnticipatedInterest is
// fixed at origination; RemainingBalance only decreases, floored at zero.
type Contribution struct {
	PartnerID           string  `json:"partner_id"`
	Amount              float64 `json:"amount"`
	Rate                float64 `json:"rate"`
	AnticipatedInterest float64 `json:"anticipated_interest"`
	RemainingBalance    float64 `json:"remaining_balance"`
}

// DistributionEntry is one partner's slice of a payment.
type DistributionEntry struct {
	PartnerID        string  `json:"partner_id"`
	Interest         float64 `json:"interest"`
	Principal        float64 `json:"principal"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// Payment is an immutable ledger entry appended by the allocator.
type Payment struct {
	Date          time.Time           `json:"date"`
	Total         float64             `json:"total"`
	InterestPaid  float64             `json:"interest_paid"`
	PrincipalPaid float64             `json:"principal_paid"`
	Unapplied     float64             `json:"unapplied,omitempty"`
	Distribution  []DistributionEntry `json:"distribution"`
}

type Loan struct {
	ID                       uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID                   string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	ClientID                 string         `gorm:"size:32;index:idx_loans_client_active" json:"client_id"`
	Contributions            []Contribution `gorm:"serializer:json;type:json" json:"contributions"`
	RequestedAmount          float64        `gorm:"type:decimal(18,2)" json:"requested_amount"`
	DisbursedAmount          float64        `gorm:"type:decimal(18,2)" json:"disbursed_amount"`
	TotalAnticipatedInterest float64        `gorm:"type:decimal(18,2)" json:"total_anticipated_interest"`
	OutstandingBalance       float64        `gorm:"type:decimal(18,2)" json:"outstanding_balance"`
	TermValue                int            `json:"term_value"`
	TermUnit                 TermUnit       `gorm:"size:16" json:"term_unit"`
	StartDate                time.Time      `gorm:"type:date" json:"start_date"`
	DueDate                  time.Time      `gorm:"type:date" json:"due_date"`
	State                    State          `gorm:"type:enum('active','paid','overdue');default:'active'" json:"state"`
	CollateralPhotoURL       string         `gorm:"type:text" json:"collateral_photo_url,omitempty"`
	Payments                 []Payment      `gorm:"serializer:json;type:json" json:"payments"`

	// Flat funding fields kept for rows created before multi-partner loans.
	LegacyPartnerID string  `gorm:"size:32;column:legacy_partner_id" json:"legacy_partner_id,omitempty"`
	LegacyRate      float64 `gorm:"type:decimal(6,2);column:legacy_rate" json:"legacy_rate,omitempty"`

	Shape FundingShape `gorm:"-" json:"-"`

	StateUpdatedAt time.Time      `gorm:"autoCreateTime" json:"state_updated_at"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// AfterFind pins the funding shape at load time.
func (l *Loan) AfterFind(*gorm.DB) error {
	l.ResolveShape()
	return nil
}

func (l *Loan) ResolveShape() {
	if len(l.Contributions) > 0 {
		l.Shape = ShapeMulti
	} else {
		l.Shape = ShapeSingle
	}
}

func (l *Loan) shape() FundingShape {
	if l.Shape == ShapeUnknown {
		l.ResolveShape()
	}
	return l.Shape
}

// FundedBy reports whether partnerID holds a live share of this loan, and how
// much it originally funded.
func (l *Loan) FundedBy(partnerID string) (float64, bool) {
	if l.shape() == ShapeMulti {
		for i := range l.Contributions {
			if l.Contributions[i].PartnerID == partnerID {
				return l.Contributions[i].Amount, true
			}
		}
		return 0, false
	}
	if l.LegacyPartnerID == partnerID {
		return l.RequestedAmount, true
	}
	return 0, false
}
