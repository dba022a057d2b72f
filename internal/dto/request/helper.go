package request

import (
	"strings"
	"time"

	"filmorate/pkg/errs"
	"filmorate/pkg/utils"
)

// parseDate accepts an empty value (left for the required rule) or a 2006-01-02 date.
func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(utils.DateLayout, value)
	if err != nil {
		return time.Time{}, errs.Invalid(field, "Must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
