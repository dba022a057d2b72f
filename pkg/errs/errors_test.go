package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "not found", err: NotFound(EntityFilm, 1), want: KindNotFound},
		{name: "wrapped duplicate", err: fmt.Errorf("add user: %w", Duplicate(EntityUser, 2)), want: KindDuplicate},
		{name: "validation", err: Invalid("name", "must not be blank"), want: KindValidation},
		{name: "conflict", err: Conflict(EntityMpa, 3, ""), want: KindConflict},
		{name: "plain error", err: fmt.Errorf("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "film with id 7 not found", NotFound(EntityFilm, 7).Error())
	assert.Equal(t, "user with id 3 already exists", Duplicate(EntityUser, 3).Error())
	assert.Equal(t,
		"validation failed: name: must not be blank; duration: must be 0 or greater",
		Validation(
			Violation{Field: "name", Message: "must not be blank"},
			Violation{Field: "duration", Message: "must be 0 or greater"},
		).Error(),
	)
}

func TestViolationsOf(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Invalid("login", "must not contain whitespace"))

	violations := ViolationsOf(err)
	assert.Len(t, violations, 1)
	assert.Equal(t, "login", violations[0].Field)
	assert.Nil(t, ViolationsOf(fmt.Errorf("plain")))
	assert.False(t, Is(nil, KindInternal))
}
