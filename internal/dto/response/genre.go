package response

import "filmorate/internal/data/entity"

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MpaResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Helper converters
func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID,
		Name: genre.Name,
	}
}

func GenresToResponse(genres []*entity.Genre) []GenreResponse {
	out := make([]GenreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, GenreToResponse(g))
	}
	return out
}

func MpaToResponse(mpa *entity.Mpa) MpaResponse {
	return MpaResponse{
		ID:   mpa.ID,
		Name: mpa.Name,
	}
}

func MpaListToResponse(ratings []*entity.Mpa) []MpaResponse {
	out := make([]MpaResponse, 0, len(ratings))
	for _, m := range ratings {
		out = append(out, MpaToResponse(m))
	}
	return out
}
