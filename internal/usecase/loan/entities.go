package loan

import (
	"time"

	"lendbook/internal/domain/loan"
)

type ContributionInput struct {
	PartnerID string  `json:"partner_id"`
	Amount    float64 `json:"amount"`
	Rate      float64 `json:"rate"`
}

type OriginateInput struct {
	ClientID           string              `json:"client_id"`
	RequestedAmount    float64             `json:"requested_amount"`
	Contributions      []ContributionInput `json:"contributions"`
	TermValue          int                 `json:"term_value"`
	TermUnit           string              `json:"term_unit"`
	StartDate          time.Time           `json:"start_date"`
	CollateralPhotoURL string              `json:"collateral_photo_url"`
}

type ListFilter struct {
	State     string
	PartnerID string
}

type LoanDTO struct {
	LoanID                   string              `json:"loan_id"`
	ClientID                 string              `json:"client_id"`
	Contributions            []loan.Contribution `json:"contributions"`
	RequestedAmount          float64             `json:"requested_amount"`
	DisbursedAmount          float64             `json:"disbursed_amount"`
	TotalAnticipatedInterest float64             `json:"total_anticipated_interest"`
	OutstandingBalance       float64             `json:"outstanding_balance"`
	TermValue                int                 `json:"term_value"`
	TermUnit                 string              `json:"term_unit"`
	StartDate                time.Time           `json:"start_date"`
	DueDate                  time.Time           `json:"due_date"`
	State                    string              `json:"state"`
	CollateralPhotoURL       string              `json:"collateral_photo_url,omitempty"`
	Payments                 []loan.Payment      `json:"payments"`
	CreatedAt                time.Time           `json:"created_at"`
}

func ToDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:                   l.LoanID,
		ClientID:                 l.ClientID,
		Contributions:            l.Contributions,
		RequestedAmount:          l.RequestedAmount,
		DisbursedAmount:          l.DisbursedAmount,
		TotalAnticipatedInterest: l.TotalAnticipatedInterest,
		OutstandingBalance:       l.OutstandingBalance,
		TermValue:                l.TermValue,
		TermUnit:                 string(l.TermUnit),
		StartDate:                l.StartDate,
		DueDate:                  l.DueDate,
		State:                    string(l.State),
		CollateralPhotoURL:       l.CollateralPhotoURL,
		Payments:                 l.Payments,
		CreatedAt:                l.CreatedAt,
	}
}

func toDomainInputs(ins []ContributionInput) []loan.ContributionInput {
	out := make([]loan.ContributionInput, 0, len(ins))
	for _, in := range ins {
		out = append(out, loan.ContributionInput(in))
	}
	return out
}
