// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/account-ledger/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, id int32) (domain.Account, error)
	Block(ctx context.Context, id int32) error
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create creates and returns an account with zero balance for the given person.
func (s *Service) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	dailyLimit, err := decimal.NewFromString(arg.DailyWithdrawalLimit)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Account{}, domain.ErrInvalidAmount
	}

	if dailyLimit.IsNegative() {
		return domain.Account{}, domain.ErrNegativeLimit
	}

	account, err := s.repo.Create(ctx, arg)
	if err != nil {
		return account, err
	}

	return account, nil
}

// Get returns account for the given account ID.
func (s *Service) Get(ctx context.Context, id int32) (domain.Account, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return account, err
	}

	return account, nil
}

// GetBalance returns the balance of the account with the given id.
// The balance of a blocked account stays readable.
func (s *Service) GetBalance(ctx context.Context, id int32) (string, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}

	return account.Balance, nil
}

// Block puts the account into its terminal blocked state.
func (s *Service) Block(ctx context.Context, id int32) error {
	return s.repo.Block(ctx, id)
}
