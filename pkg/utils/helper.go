package utils

import (
	"fmt"
	"strconv"

	"filmorate/pkg/errs"
)

// ParseID parses a path parameter holding an entity id.
func ParseID(field, value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errs.Invalid(field, fmt.Sprintf("Must be an integer, got %q", value))
	}
	return id, nil
}

// ParsePositive parses an optional positive integer query parameter.
func ParsePositive(field, value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, errs.Invalid(field, fmt.Sprintf("Must be an integer, got %q", value))
	}
	if result < 1 {
		return 0, errs.Invalid(field, "Must be positive")
	}

	return result, nil
}
