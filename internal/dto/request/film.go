package request

import "filmorate/internal/data/entity"

// RefRequest points at a genre or rating by id; the name is ignored.
type RefRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

type FilmRequest struct {
	ID          int64        `json:"id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ReleaseDate string       `json:"releaseDate"`
	Duration    int          `json:"duration"`
	Mpa         *RefRequest  `json:"mpa"`
	Genres      []RefRequest `json:"genres,omitempty"`
}

func (r *FilmRequest) ToEntity() (*entity.Film, error) {
	releaseDate, err := parseDate("releaseDate", r.ReleaseDate)
	if err != nil {
		return nil, err
	}

	film := &entity.Film{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: releaseDate,
		Duration:    r.Duration,
	}

	if r.Mpa != nil {
		film.Mpa = &entity.Mpa{ID: r.Mpa.ID}
	}

	for _, g := range r.Genres {
		film.Genres = append(film.Genres, entity.Genre{ID: g.ID})
	}

	return film, nil
}
