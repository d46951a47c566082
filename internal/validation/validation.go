// Package validation provides the field-level checks shared by the HTTP
// request schemas and the domain entity constructors. Every check either
// passes or fails with an *Error naming the offending field and the violated
// rule, so the API layer can render a localized message by key lookup.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Error describes a single failed field check.
type Error struct {
	Field string
	Rule  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: failed rule %q", e.Field, e.Rule)
}

// MessageKey returns the i18n catalog key for this rule.
func (e *Error) MessageKey() string {
	return "validation." + e.Rule
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("dateonly", isDateOnly)
	_ = v.RegisterValidation("containsdigit", containsDigit)

	// Report fields by their json name so error keys match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// isDateOnly accepts calendar dates in strict YYYY-MM-DD form. time.Parse
// rejects both malformed layouts and impossible dates such as 2024-02-30.
func isDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func containsDigit(fl validator.FieldLevel) bool {
	return strings.ContainsAny(fl.Field().String(), "0123456789")
}

// Struct runs the struct tags of v and returns the first violation as *Error.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
		return &Error{Field: ve[0].Field(), Rule: ve[0].Tag()}
	}
	return err
}

func check(val any, tag, field, rule string) error {
	if validate.Var(val, tag) != nil {
		return &Error{Field: field, Rule: rule}
	}
	return nil
}

// NotEmpty checks that val is a non-empty string.
func NotEmpty(val, field string) error {
	return check(val, "required", field, "required")
}

// Alpha checks that val consists only of letters.
func Alpha(val, field string) error {
	if err := NotEmpty(val, field); err != nil {
		return err
	}
	return check(val, "alpha", field, "alpha")
}

// AlphaNumeric checks that val consists only of letters and digits.
func AlphaNumeric(val, field string) error {
	if err := NotEmpty(val, field); err != nil {
		return err
	}
	return check(val, "alphanum", field, "alphanum")
}

// LengthBetween checks that val has between min and max characters inclusive.
func LengthBetween(val string, min, max int, field string) error {
	if len(val) < min {
		return &Error{Field: field, Rule: "min"}
	}
	if len(val) > max {
		return &Error{Field: field, Rule: "max"}
	}
	return nil
}

// PositiveInt checks that val is larger than zero.
func PositiveInt(val int, field string) error {
	if val <= 0 {
		return &Error{Field: field, Rule: "gte"}
	}
	return nil
}

// PositiveNumber checks that val is larger than zero.
func PositiveNumber(val float64, field string) error {
	if val <= 0 {
		return &Error{Field: field, Rule: "gte"}
	}
	return nil
}

// DateString checks that val is an actual calendar date on format YYYY-MM-DD.
func DateString(val, field string) error {
	if err := NotEmpty(val, field); err != nil {
		return err
	}
	return check(val, "dateonly", field, "dateonly")
}

// Email checks that val is syntactically a valid email address.
func Email(val, field string) error {
	if err := NotEmpty(val, field); err != nil {
		return err
	}
	return check(val, "email", field, "email")
}

// ID checks that val is a valid entity id, i.e. an integer larger than zero.
func ID(val int, field string) error {
	return PositiveInt(val, field)
}

// Experience checks that val is a valid years-of-experience figure, i.e. not
// negative.
func Experience(val float64, field string) error {
	if val < 0 {
		return &Error{Field: field, Rule: "gte"}
	}
	return nil
}
