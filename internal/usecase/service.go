package usecase

import (
	"filmorate/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Film  FilmService
	User  UserService
	Genre GenreService
	Mpa   MpaService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Film:  NewFilmService(repo, log),
		User:  NewUserService(repo.User, repo.Friend, log),
		Genre: NewGenreService(repo.Genre, log),
		Mpa:   NewMpaService(repo.Mpa, repo.Film, log),
	}
}
