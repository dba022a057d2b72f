package entity

import (
	"filmorate/pkg/errs"
	"filmorate/pkg/utils"
)

// Mpa is an age-rating classification (G, PG, PG-13, R, NC-17).
type Mpa struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (m *Mpa) Validate() []errs.Violation {
	var c utils.Checker
	c.Check("name", m.Name, "notblank,max=255")
	return c.Violations()
}
