package entity

import (
	"sort"
	"time"

	"filmorate/pkg/errs"
	"filmorate/pkg/utils"
)

// CinemaBirthday is the first public film screening; releases must come after it.
const CinemaBirthday = "1895-12-28"

type Film struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	ReleaseDate time.Time `db:"release_date"`
	Duration    int       `db:"duration"`
	Mpa         *Mpa      `db:"-"`
	Genres      []Genre   `db:"-"`
}

// Validate returns every rule the film breaks; nil means the film may be stored.
func (f *Film) Validate() []errs.Violation {
	var c utils.Checker
	c.Check("name", f.Name, "notblank")
	c.Check("description", f.Description, "notblank,max=200")
	c.Check("releaseDate", f.ReleaseDate, "required,after="+CinemaBirthday)
	c.Check("duration", f.Duration, "gte=0")

	if f.Mpa == nil || f.Mpa.ID <= 0 {
		c.Add("mpa", "This field is required")
	}

	for _, g := range f.Genres {
		if g.ID <= 0 {
			c.Add("genres", "Genre id must be positive")
			break
		}
	}

	return c.Violations()
}

// GenreIDs returns the distinct genre ids in ascending order.
func (f *Film) GenreIDs() []int64 {
	seen := make(map[int64]struct{}, len(f.Genres))
	ids := make([]int64, 0, len(f.Genres))
	for _, g := range f.Genres {
		if _, ok := seen[g.ID]; ok {
			continue
		}
		seen[g.ID] = struct{}{}
		ids = append(ids, g.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (f *Film) MpaID() int64 {
	if f.Mpa == nil {
		return 0
	}
	return f.Mpa.ID
}
