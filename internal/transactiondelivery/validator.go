package transactiondelivery

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidAmount validates that an operation amount is a positive decimal with
// at most 2 fraction digits. Amounts travel as JSON strings to keep the wire
// format free of binary floating point rounding.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}

	return d.IsPositive() && d.Exponent() >= -2
}
