package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error for the boundary layer.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindDuplicate
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Entity names used in error messages and logs.
const (
	EntityFilm  = "film"
	EntityUser  = "user"
	EntityGenre = "genre"
	EntityMpa   = "mpa"
)

// Violation is a single failed field rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the one error type shared by storage, services and handlers.
type Error struct {
	Kind       Kind
	Entity     string
	ID         int64
	Message    string
	Violations []Violation
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.defaultMessage()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) defaultMessage() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
	case KindDuplicate:
		return fmt.Sprintf("%s with id %d already exists", e.Entity, e.ID)
	case KindValidation:
		msgs := make([]string, 0, len(e.Violations))
		for _, v := range e.Violations {
			msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
		}
		return "validation failed: " + strings.Join(msgs, "; ")
	case KindConflict:
		return fmt.Sprintf("%s with id %d is in use", e.Entity, e.ID)
	default:
		return "internal error"
	}
}

func NotFound(entity string, id int64) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

func Duplicate(entity string, id int64) *Error {
	return &Error{Kind: KindDuplicate, Entity: entity, ID: id}
}

func Conflict(entity string, id int64, message string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, ID: id, Message: message}
}

func Validation(violations ...Violation) *Error {
	return &Error{Kind: KindValidation, Violations: violations}
}

// Invalid builds a validation error for a single field.
func Invalid(field, message string) *Error {
	return Validation(Violation{Field: field, Message: message})
}

// KindOf returns the kind of the first *Error in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ViolationsOf returns the field violations carried by err, if any.
func ViolationsOf(err error) []Violation {
	var e *Error
	if errors.As(err, &e) {
		return e.Violations
	}
	return nil
}
