// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into json frinedly struct.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a human readable message for a failed binding rule.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "min":
		return " must be greater or equal to " + fe.Param()
	case "max":
		return " must be less or equal to " + fe.Param()
	case "amount":
		return " must be a positive number with at most 2 decimal places"
	case "limit":
		return " must be a non-negative number with at most 2 decimal places"
	}

	return " is invalid"
}
