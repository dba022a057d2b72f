package request

import "filmorate/internal/data/entity"

type GenreRequest struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

func (r *GenreRequest) ToEntity() *entity.Genre {
	return &entity.Genre{ID: r.ID, Name: r.Name}
}

type MpaRequest struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

func (r *MpaRequest) ToEntity() *entity.Mpa {
	return &entity.Mpa{ID: r.ID, Name: r.Name}
}
