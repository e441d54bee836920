package accountdelivery

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidLimit validates that a daily withdrawal limit is a non-negative
// decimal with at most 2 fraction digits.
var ValidLimit validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}

	return !d.IsNegative() && d.Exponent() >= -2
}
