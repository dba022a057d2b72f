package entity

import (
	"filmorate/pkg/errs"
	"filmorate/pkg/utils"
)

type Genre struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (g *Genre) Validate() []errs.Violation {
	var c utils.Checker
	c.Check("name", g.Name, "notblank,max=255")
	return c.Violations()
}
