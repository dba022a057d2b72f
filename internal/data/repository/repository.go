package repository

import (
	"filmorate/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Film   FilmRepository
	User   UserRepository
	Genre  GenreRepository
	Mpa    MpaRepository
	Like   LikeRepository
	Friend FriendRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Film:   NewFilmRepository(db, log),
		User:   NewUserRepository(db, log),
		Genre:  NewGenreRepository(db, log),
		Mpa:    NewMpaRepository(db, log),
		Like:   NewLikeRepository(db, log),
		Friend: NewFriendRepository(db, log),
	}
}
