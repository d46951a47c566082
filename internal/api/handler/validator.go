package handler

import (
	"github.com/parkstaff/recruitment-api/internal/validation"
)

// echoValidator adapts the validation package so Echo can call
// c.Validate(req). Failures come back as *validation.Error carrying the field
// and rule, which the central error handler renders as a localized 400.
type echoValidator struct{}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{}
}

// Validate satisfies the echo.Validator interface. The first violation wins.
func (ev *echoValidator) Validate(i any) error {
	return validation.Struct(i)
}
