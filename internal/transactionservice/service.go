// Package transactionservice manages business logic layer of transactions.
package transactionservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/account-ledger/internal/domain"
	"github.com/go-petr/account-ledger/pkg/clockpkg"
)

// Repo provides data access layer interface needed by transaction service layer.
//
// Deposit and Withdraw are atomic units: the account guard, the daily limit
// evaluation (withdrawals), the transaction record and the balance update
// either all apply or none apply.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Deposit(ctx context.Context, accountID int32, amount string) (domain.Account, domain.Transaction, error)
	Withdraw(ctx context.Context, accountID int32, amount string, day time.Time) (domain.Account, domain.Transaction, error)
	List(ctx context.Context, arg domain.ListTransactionsParams) ([]domain.Transaction, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo  Repo
	clock clockpkg.Clock
}

// New returns transaction service struct to manage transaction bussines logic.
func New(tr Repo, clock clockpkg.Clock) *Service {
	return &Service{
		repo:  tr,
		clock: clock,
	}
}

func validAmount(ctx context.Context, amount string) error {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return domain.ErrNegativeAmount
	}

	return nil
}

// Deposit credits the account with the given positive amount and returns the
// account with its new balance.
func (s *Service) Deposit(ctx context.Context, accountID int32, amount string) (domain.Account, error) {
	if err := validAmount(ctx, amount); err != nil {
		return domain.Account{}, err
	}

	account, _, err := s.repo.Deposit(ctx, accountID, amount)
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// Withdraw debits the account with the given positive amount and returns the
// account with its new balance. The daily withdrawal limit is evaluated
// against the service clock's current day.
func (s *Service) Withdraw(ctx context.Context, accountID int32, amount string) (domain.Account, error) {
	if err := validAmount(ctx, amount); err != nil {
		return domain.Account{}, err
	}

	account, _, err := s.repo.Withdraw(ctx, accountID, amount, s.clock.Now())
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// List returns the account's transactions ordered by date descending.
func (s *Service) List(ctx context.Context, accountID, pageSize, pageID int32) ([]domain.Transaction, error) {
	arg := domain.ListTransactionsParams{
		AccountID: accountID,
		Limit:     pageSize,
		Offset:    (pageID - 1) * pageSize,
	}

	transactions, err := s.repo.List(ctx, arg)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
