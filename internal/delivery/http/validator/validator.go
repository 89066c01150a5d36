// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "directory/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New creates the request validator used by the HTTP server.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator. Struct tags drive the rules; failures
// map to the validation AppError so the error middleware renders a 400.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
