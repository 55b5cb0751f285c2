package loan

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	domainClient "lendbook/internal/domain/client"
	domainLoan "lendbook/internal/domain/loan"
	domainPartner "lendbook/internal/domain/partner"
	"lendbook/internal/domain/uow"
	"lendbook/internal/testutil/clientmock"
	"lendbook/internal/testutil/loanmock"
	"lendbook/internal/testutil/partnermock"
	"lendbook/internal/testutil/uowmock"

	"gorm.io/gorm"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

// partnersStore keeps partner rows in a map and serves the mock repo from it.
type partnersStore struct {
	rows  map[string]*domainPartner.Partner
	saved []string
}

func newPartnersStore(ps ...*domainPartner.Partner) *partnersStore {
	s := &partnersStore{rows: map[string]*domainPartner.Partner{}}
	for _, p := range ps {
		s.rows[p.PartnerID] = p
	}
	return s
}

func (s *partnersStore) repo() *partnermock.Repo {
	get := func(_ context.Context, partnerID string) (*domainPartner.Partner, error) {
		p, ok := s.rows[partnerID]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		return p, nil
	}
	return &partnermock.Repo{
		GetByPartnerIDFn:          get,
		GetByPartnerIDForUpdateFn: get,
		SaveFn: func(_ context.Context, p *domainPartner.Partner) error {
			s.saved = append(s.saved, p.PartnerID)
			return nil
		},
	}
}

func clientExists(clientID string) *clientmock.Repo {
	return &clientmock.Repo{
		GetByClientIDFn: func(_ context.Context, id string) (*domainClient.Client, error) {
			if id != clientID {
				return nil, gorm.ErrRecordNotFound
			}
			return &domainClient.Client{ClientID: id}, nil
		},
	}
}

func originateInput() OriginateInput {
	return OriginateInput{
		ClientID:        "c1",
		RequestedAmount: 1000000,
		Contributions: []ContributionInput{
			{PartnerID: "p1", Amount: 600000, Rate: 4},
			{PartnerID: "p2", Amount: 400000, Rate: 6},
		},
		TermValue: 6,
		TermUnit:  "months",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestOriginate_DebitsEveryPartner(t *testing.T) {
	ctx := context.Background()
	store := newPartnersStore(
		&domainPartner.Partner{PartnerID: "p1", Name: "Alpha Capital", AvailableCash: 700000, ContributedCapital: 700000},
		&domainPartner.Partner{PartnerID: "p2", Name: "Beta Fund", AvailableCash: 500000, ContributedCapital: 500000},
	)

	var created *domainLoan.Loan
	loans := &loanmock.Repo{
		CreateFn: func(_ context.Context, l *domainLoan.Loan) error {
			created = l
			return nil
		},
	}

	uc := NewUsecase(loans, clientExists("c1"), uowmock.Passthrough(uow.Repos{
		Partners: store.repo(),
		Loans:    loans,
	}))

	dto, err := uc.Originate(ctx, originateInput())
	if err != nil {
		t.Fatalf("Originate: %v", err)
	}
	if created == nil {
		t.Fatalf("loan was not persisted")
	}
	if dto.LoanID == "" || len(dto.LoanID) != 32 {
		t.Fatalf("loan id not assigned: %q", dto.LoanID)
	}
	if !almost(dto.TotalAnticipatedInterest, 48000) || !almost(dto.DisbursedAmount, 952000) {
		t.Fatalf("loan figures wrong: %+v", dto)
	}

	p1, p2 := store.rows["p1"], store.rows["p2"]
	if !almost(p1.AvailableCash, 100000) || !almost(p1.ContributedCapital, 1300000) || !almost(p1.TotalEarnings, 24000) {
		t.Fatalf("p1 balances: cash %v capital %v earnings %v", p1.AvailableCash, p1.ContributedCapital, p1.TotalEarnings)
	}
	if !almost(p2.AvailableCash, 100000) || !almost(p2.ContributedCapital, 900000) || !almost(p2.TotalEarnings, 24000) {
		t.Fatalf("p2 balances: cash %v capital %v earnings %v", p2.AvailableCash, p2.ContributedCapital, p2.TotalEarnings)
	}
	if len(store.saved) != 2 {
		t.Fatalf("want both partners saved, got %v", store.saved)
	}
}

func TestOriginate_InsufficientFunds_NothingPersisted(t *testing.T) {
	ctx := context.Background()
	store := newPartnersStore(
		&domainPartner.Partner{PartnerID: "p1", Name: "Alpha Capital", AvailableCash: 700000},
		&domainPartner.Partner{PartnerID: "p2", Name: "Beta Fund", AvailableCash: 100000},
	)

	loans := &loanmock.Repo{
		CreateFn: func(context.Context, *domainLoan.Loan) error {
			t.Fatalf("loan must not be created when validation fails")
			return nil
		},
	}

	uc := NewUsecase(loans, clientExists("c1"), uowmock.Passthrough(uow.Repos{
		Partners: store.repo(),
		Loans:    loans,
	}))

	_, err := uc.Originate(ctx, originateInput())
	if err == nil || !domainLoan.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("no partner may be saved on rejection, got %v", store.saved)
	}
}

func TestOriginate_UnknownClient(t *testing.T) {
	ctx := context.Background()
	uc := NewUsecase(&loanmock.Repo{}, clientExists("someone-else"), uowmock.New().
		WithWithinTx(func(context.Context, func(uow.Repos) error) error {
			t.Fatalf("transaction must not open for an unknown client")
			return nil
		}))

	if _, err := uc.Originate(ctx, originateInput()); !errors.Is(err, domainClient.ErrNotFound) {
		t.Fatalf("want client.ErrNotFound, got %v", err)
	}
}

func TestValidate_UsesUnlockedReads(t *testing.T) {
	ctx := context.Background()
	lockUsed := false
	partners := &partnermock.Repo{
		GetByPartnerIDFn: func(_ context.Context, partnerID string) (*domainPartner.Partner, error) {
			return &domainPartner.Partner{PartnerID: partnerID, Name: "Alpha Capital", AvailableCash: 1000000}, nil
		},
		GetByPartnerIDForUpdateFn: func(_ context.Context, partnerID string) (*domainPartner.Partner, error) {
			lockUsed = true
			return nil, gorm.ErrRecordNotFound
		},
	}

	uc := NewUsecase(&loanmock.Repo{}, clientExists("c1"), uowmock.Passthrough(uow.Repos{Partners: partners}))

	err := uc.Validate(ctx, []ContributionInput{{PartnerID: "p1", Amount: 1000000, Rate: 5}}, 1000000)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if lockUsed {
		t.Fatalf("Validate must not lock partner rows")
	}
}

func TestGet_MapsRecordNotFound(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{
		GetByLoanIDFn: func(context.Context, string) (*domainLoan.Loan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}, &clientmock.Repo{}, uowmock.New())

	if _, err := uc.Get(context.Background(), "missing"); !errors.Is(err, domainLoan.ErrNotFound) {
		t.Fatalf("want loan.ErrNotFound, got %v", err)
	}
}

func TestList_FiltersByPartner(t *testing.T) {
	ls := []*domainLoan.Loan{
		{LoanID: "a", State: domainLoan.StateActive, Contributions: []domainLoan.Contribution{{PartnerID: "p1", Amount: 100}}},
		{LoanID: "b", State: domainLoan.StateActive, Contributions: []domainLoan.Contribution{{PartnerID: "p2", Amount: 100}}},
		{LoanID: "c", State: domainLoan.StateActive, LegacyPartnerID: "p1", RequestedAmount: 100},
	}
	uc := NewUsecase(&loanmock.Repo{
		ListFn: func(_ context.Context, state domainLoan.State) ([]*domainLoan.Loan, error) {
			if state != domainLoan.StateActive {
				t.Fatalf("state filter not forwarded, got %q", state)
			}
			return ls, nil
		},
	}, &clientmock.Repo{}, uowmock.New())

	out, err := uc.List(context.Background(), ListFilter{State: "active", PartnerID: "p1"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 2 || out[0].LoanID != "a" || out[1].LoanID != "c" {
		t.Fatalf("partner filter wrong: %+v", out)
	}
}
