// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-petr/account-ledger/internal/accountrepo"
	"github.com/go-petr/account-ledger/internal/domain"
	"github.com/go-petr/account-ledger/pkg/dbpkg"
	"github.com/go-petr/account-ledger/pkg/errorspkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns transaction RepoPGS bound to an already open transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns transaction RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    transactions (account_id, value)
VALUES
    ($1, $2)
RETURNING id, account_id, value, transaction_date
`

// Create appends a transaction for the account and then returns it.
// The transaction date is assigned by the store.
func (r *RepoPGS) Create(ctx context.Context, value string, accountID int32) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, accountID, value)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.AccountID,
		&t.Value,
		&t.TransactionDate,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const sumDebitsQuery = `
SELECT COALESCE(SUM(value), 0)
FROM transactions
WHERE
    account_id = $1
    AND value < 0
    AND transaction_date::date = $2::date
`

// SumDebits returns the signed sum of the account's debit transactions
// recorded on the given day. Deposits are excluded from the sum.
func (r *RepoPGS) SumDebits(ctx context.Context, accountID int32, day time.Time) (string, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, sumDebitsQuery, accountID, day)

	var sum string

	if err := row.Scan(&sum); err != nil {
		l.Error().Err(err).Send()
		return "", errorspkg.ErrInternal
	}

	return sum, nil
}

const listQuery = `
SELECT
	id, account_id, value, transaction_date
FROM transactions
WHERE account_id = $1
ORDER BY transaction_date DESC
LIMIT $2 OFFSET $3
`

// List returns the account's transactions ordered by date descending.
func (r *RepoPGS) List(ctx context.Context, arg domain.ListTransactionsParams) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery,
		arg.AccountID,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(
			&t.ID,
			&t.AccountID,
			&t.Value,
			&t.TransactionDate,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

// Deposit credits the account as a single database transaction.
//
// It locks the account row, checks the active flag, appends the transaction
// record and updates the balance. Either all of it applies or none of it.
func (r *RepoPGS) Deposit(ctx context.Context, accountID int32, amount string) (domain.Account, domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var (
		account     domain.Account
		transaction domain.Transaction
	)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return account, transaction, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	accountRepo := accountrepo.NewRepoPGS(tx)
	transactionRepo := NewTxRepoPGS(tx)

	account, err = accountRepo.GetForUpdate(ctx, accountID)
	if err != nil {
		return domain.Account{}, transaction, err
	}

	if !account.ActiveFlag {
		return domain.Account{}, transaction, domain.ErrAccountBlocked
	}

	transaction, err = transactionRepo.Create(ctx, amount, accountID)
	if err != nil {
		return domain.Account{}, transaction, err
	}

	account, err = accountRepo.AddBalance(ctx, amount, accountID)
	if err != nil {
		return domain.Account{}, transaction, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, domain.Transaction{}, errorspkg.ErrInternal
	}

	return account, transaction, nil
}

// Withdraw debits the account as a single database transaction.
//
// It locks the account row, checks the active flag, sums the day's already
// recorded debits and evaluates the daily withdrawal limit under the row
// lock, so two concurrent withdrawals cannot both pass the check against a
// stale sum. The amount is the positive value requested; day supplies the
// date the limit is evaluated against.
func (r *RepoPGS) Withdraw(ctx context.Context, accountID int32, amount string, day time.Time) (domain.Account, domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var (
		account     domain.Account
		transaction domain.Transaction
	)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return account, transaction, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	accountRepo := accountrepo.NewRepoPGS(tx)
	transactionRepo := NewTxRepoPGS(tx)

	account, err = accountRepo.GetForUpdate(ctx, accountID)
	if err != nil {
		return domain.Account{}, transaction, err
	}

	if !account.ActiveFlag {
		return domain.Account{}, transaction, domain.ErrAccountBlocked
	}

	priorDebitsSum, err := transactionRepo.SumDebits(ctx, accountID, day)
	if err != nil {
		return domain.Account{}, transaction, err
	}

	priorDebits, err := decimal.NewFromString(priorDebitsSum)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, transaction, errorspkg.ErrInternal
	}

	requested, err := decimal.NewFromString(amount)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, transaction, domain.ErrInvalidAmount
	}

	dailyLimit, err := decimal.NewFromString(account.DailyWithdrawalLimit)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, transaction, errorspkg.ErrInternal
	}

	if !domain.WithdrawalPermitted(priorDebits, requested, dailyLimit) {
		return domain.Account{}, transaction, domain.ErrWithdrawalLimitExceeded
	}

	transaction, err = transactionRepo.Create(ctx, "-"+amount, accountID)
	if err != nil {
		return domain.Account{}, transaction, err
	}

	account, err = accountRepo.AddBalance(ctx, "-"+amount, accountID)
	if err != nil {
		return domain.Account{}, transaction, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, domain.Transaction{}, errorspkg.ErrInternal
	}

	return account, transaction, nil
}
