package adaptor

import (
	"filmorate/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Film  *FilmHandler
	User  *UserHandler
	Genre *GenreHandler
	Mpa   *MpaHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Film:  NewFilmHandler(service.Film, log),
		User:  NewUserHandler(service.User, log),
		Genre: NewGenreHandler(service.Genre, log),
		Mpa:   NewMpaHandler(service.Mpa, log),
	}
}
