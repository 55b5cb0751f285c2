package uow

import (
	"context"

	"lendbook/internal/domain/client"
	"lendbook/internal/domain/loan"
	"lendbook/internal/domain/partner"
)

type Repos struct {
	Partners partner.Repository
	Clients  client.Repository
	Loans    loan.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
