package entity

import (
	"strings"
	"time"

	"filmorate/pkg/errs"
	"filmorate/pkg/utils"
)

type User struct {
	ID       int64     `db:"id"`
	Email    string    `db:"email"`
	Login    string    `db:"login"`
	Name     string    `db:"name"`
	Birthday time.Time `db:"birthday"`
}

func (u *User) Validate() []errs.Violation {
	var c utils.Checker
	c.Check("email", u.Email, "notblank,email")
	c.Check("login", u.Login, "notblank,nowhitespace")
	c.Check("birthday", u.Birthday, "required,notfuture")
	return c.Violations()
}

// DisplayName falls back to the login when no name was given.
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.Name) == "" {
		return u.Login
	}
	return u.Name
}
