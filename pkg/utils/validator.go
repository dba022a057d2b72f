package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"filmorate/pkg/errs"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

// Today returns the current date at midnight UTC. Replaced in tests.
var Today = func() time.Time {
	return truncateDay(time.Now())
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	mustRegister(v, "notblank", notBlank)
	mustRegister(v, "nowhitespace", noWhitespace)
	mustRegister(v, "after", afterDate)
	mustRegister(v, "notfuture", notFuture)

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func noWhitespace(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

func afterDate(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}

	bound, err := time.Parse(DateLayout, fl.Param())
	if err != nil {
		return false
	}

	return truncateDay(value).After(bound)
}

func notFuture(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}

	return !truncateDay(value).After(Today())
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Checker collects violations from explicit per-field checks.
type Checker struct {
	violations []errs.Violation
}

// Check runs the validator tags against value and records the first failed rule.
func (c *Checker) Check(field string, value any, tags string) {
	err := validate.Var(value, tags)
	if err == nil {
		return
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		c.Add(field, err.Error())
		return
	}

	c.Add(field, getErrorMessage(field, fieldErrors[0]))
}

func (c *Checker) Add(field, message string) {
	c.violations = append(c.violations, errs.Violation{Field: field, Message: message})
}

// Violations returns nil when every check passed.
func (c *Checker) Violations() []errs.Violation {
	return c.violations
}

// converts validator errors to human-readable messages
func getErrorMessage(field string, err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "notblank":
		return "Must not be blank"
	case "nowhitespace":
		return "Must not contain whitespace"
	case "email":
		return "Invalid email format"
	case "min", "gte":
		return fmt.Sprintf("Must be at least %s", err.Param())
	case "max", "lte":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "after":
		return fmt.Sprintf("Must be after %s", err.Param())
	case "notfuture":
		return "Must not be in the future"
	default:
		return fmt.Sprintf("Invalid %s field", field)
	}
}
