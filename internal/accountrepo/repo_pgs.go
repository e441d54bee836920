// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/account-ledger/internal/domain"
	"github.com/go-petr/account-ledger/pkg/dbpkg"
	"github.com/go-petr/account-ledger/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    accounts (person_id, balance, daily_withdrawal_limit, account_type)
VALUES
    ($1, 0, $2, $3)
RETURNING id, person_id, balance, daily_withdrawal_limit, account_type, active_flag, created_at
`

// Create creates the account with zero balance and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.PersonID,
		arg.DailyWithdrawalLimit,
		arg.AccountType,
	)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.PersonID,
		&a.Balance,
		&a.DailyWithdrawalLimit,
		&a.AccountType,
		&a.ActiveFlag,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "accounts_person_id_fkey":
				return a, domain.ErrPersonNotFound
			case "accounts_daily_withdrawal_limit_check":
				return a, domain.ErrNegativeLimit
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	id, person_id, balance, daily_withdrawal_limit, account_type, active_flag, created_at
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Account, error) {
	return r.get(ctx, getQuery, id)
}

const getForUpdateQuery = getQuery + `
FOR UPDATE
`

// GetForUpdate returns the account with the given id holding a row lock until
// the surrounding database transaction ends. Balance changing operations read
// the account through it so that concurrent operations on the same account
// serialize instead of racing the daily withdrawal sum.
func (r *RepoPGS) GetForUpdate(ctx context.Context, id int32) (domain.Account, error) {
	return r.get(ctx, getForUpdateQuery, id)
}

func (r *RepoPGS) get(ctx context.Context, query string, id int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, query, id)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.PersonID,
		&a.Balance,
		&a.DailyWithdrawalLimit,
		&a.AccountType,
		&a.ActiveFlag,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const addBalanceQuery = `
UPDATE accounts
SET balance = balance + $1
WHERE id = $2
RETURNING id, person_id, balance, daily_withdrawal_limit, account_type, active_flag, created_at
`

// AddBalance changes the account's balance and returns the changed account.
// The amount may be negative to record a withdrawal.
func (r *RepoPGS) AddBalance(ctx context.Context, amount string, id int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addBalanceQuery, amount, id)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.PersonID,
		&a.Balance,
		&a.DailyWithdrawalLimit,
		&a.AccountType,
		&a.ActiveFlag,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const blockQuery = `
UPDATE accounts
SET active_flag = false
WHERE id = $1
RETURNING id
`

// Block sets the account's active flag to false. Blocking an already blocked
// account succeeds; blocking a missing account returns ErrAccountNotFound.
func (r *RepoPGS) Block(ctx context.Context, id int32) error {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, blockQuery, id)

	var blockedID int32

	err := row.Scan(&blockedID)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return domain.ErrAccountNotFound
		}

		return errorspkg.ErrInternal
	}

	return nil
}
