package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates a zero or negative amount.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrWithdrawalLimitExceeded indicates that the withdrawal would breach
	// the account's daily withdrawal limit.
	ErrWithdrawalLimitExceeded = errors.New("exceeds daily withdrawal")
)

// Transaction holds one immutable signed ledger entry for an account.
// Positive value is a deposit, negative value is a withdrawal.
type Transaction struct {
	ID              int64     `json:"id"`
	AccountID       int32     `json:"account_id"`
	Value           string    `json:"value"`
	TransactionDate time.Time `json:"transaction_date"`
}

// ListTransactionsParams is the input data to page through an account's transactions.
type ListTransactionsParams struct {
	AccountID int32 `json:"account_id"`
	Limit     int32 `json:"limit"`
	Offset    int32 `json:"offset"`
}
