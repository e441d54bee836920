package domain

import "github.com/shopspring/decimal"

// WithdrawalPermitted reports whether a withdrawal of the requested amount may
// be recorded given the debits already booked on the same day and the
// account's daily withdrawal limit.
//
// priorDebits is the signed sum of the day's debit transactions (zero or
// negative); same-day deposits are deliberately not part of it and buy no
// extra headroom. requested must be non-negative, so a zero request is always
// permitted.
func WithdrawalPermitted(priorDebits, requested, dailyLimit decimal.Decimal) bool {
	return priorDebits.Abs().Add(requested).LessThanOrEqual(dailyLimit)
}
