// Package validation defines the request/response payload contracts for the
// platform's HTTP layer. The structs are pure shape contracts; rejection on
// constraint violation is the returned error, translation to HTTP responses
// belongs to the hosting framework.
package validation

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterStructValidation(validateBookingDates, CreateBookingRequest{})
	})
	return validate
}

// Struct validates any payload struct against its declared constraints.
func Struct(v any) error {
	return instance().Struct(v)
}
