// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account doesn't exist")
	// ErrAccountBlocked indicates that the account no longer accepts balance changing operations.
	ErrAccountBlocked = errors.New("cannot perform operations on this account")
	// ErrPersonNotFound indicates that the owning person for the account is not found.
	ErrPersonNotFound = errors.New("person id doesn't exist")
	// ErrNegativeLimit indicates a negative daily withdrawal limit.
	ErrNegativeLimit = errors.New("negative daily withdrawal limit")
)

// Account holds a person's ledgered balance with a daily withdrawal ceiling
// and an active/blocked state.
type Account struct {
	ID                   int32     `json:"id"`
	PersonID             int32     `json:"person_id"`
	Balance              string    `json:"balance"`
	DailyWithdrawalLimit string    `json:"daily_withdrawal_limit"`
	AccountType          int32     `json:"account_type"`
	ActiveFlag           bool      `json:"active_flag"`
	CreatedAt            time.Time `json:"created_at"`
}

// CreateAccountParams is the input data to create an account.
type CreateAccountParams struct {
	PersonID             int32  `json:"person_id"`
	DailyWithdrawalLimit string `json:"daily_withdrawal_limit"`
	AccountType          int32  `json:"account_type"`
}
