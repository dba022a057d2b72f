package response

import (
	"filmorate/internal/data/entity"
	"filmorate/pkg/utils"
)

type FilmResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ReleaseDate string          `json:"releaseDate"`
	Duration    int             `json:"duration"`
	Mpa         *MpaResponse    `json:"mpa"`
	Genres      []GenreResponse `json:"genres"`
}

type LikesResponse struct {
	FilmID  int64   `json:"filmId"`
	Count   int64   `json:"count"`
	UserIDs []int64 `json:"userIds"`
}

// Helper converters
func FilmToResponse(film *entity.Film) FilmResponse {
	resp := FilmResponse{
		ID:          film.ID,
		Name:        film.Name,
		Description: film.Description,
		ReleaseDate: film.ReleaseDate.Format(utils.DateLayout),
		Duration:    film.Duration,
		Genres:      make([]GenreResponse, 0, len(film.Genres)),
	}

	if film.Mpa != nil {
		mpa := MpaToResponse(film.Mpa)
		resp.Mpa = &mpa
	}

	for i := range film.Genres {
		resp.Genres = append(resp.Genres, GenreToResponse(&film.Genres[i]))
	}

	return resp
}

func FilmsToResponse(films []*entity.Film) []FilmResponse {
	out := make([]FilmResponse, 0, len(films))
	for _, f := range films {
		out = append(out, FilmToResponse(f))
	}
	return out
}
