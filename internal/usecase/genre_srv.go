package usecase

import (
	"context"
	"fmt"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/pkg/errs"

	"go.uber.org/zap"
)

type GenreService interface {
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	FindByID(ctx context.Context, id int64) (*entity.Genre, error)
	Add(ctx context.Context, genre *entity.Genre) (*entity.Genre, error)
	Update(ctx context.Context, genre *entity.Genre) (*entity.Genre, error)
	Delete(ctx context.Context, id int64) error
}

type genreService struct {
	genreRepo repository.GenreRepository
	log       *zap.Logger
}

func NewGenreService(genreRepo repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		genreRepo: genreRepo,
		log:       log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	genres, err := s.genreRepo.FindAll(ctx)
	if err != nil {
		logFailure(s.log, "Failed to get genres", err)
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return genres, nil
}

func (s *genreService) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	genre, err := s.genreRepo.FindByID(ctx, id)
	if err != nil {
		logFailure(s.log, "Failed to get genre", err, zap.Int64("genre_id", id))
		return nil, fmt.Errorf("get genre: %w", err)
	}
	if genre == nil {
		return nil, errs.NotFound(errs.EntityGenre, id)
	}
	return genre, nil
}

func (s *genreService) Add(ctx context.Context, genre *entity.Genre) (*entity.Genre, error) {
	if violations := genre.Validate(); len(violations) > 0 {
		return nil, validationFailed(s.log, "Create genre", violations)
	}

	if err := s.genreRepo.Create(ctx, genre); err != nil {
		logFailure(s.log, "Failed to create genre", err, zap.String("name", genre.Name))
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created", zap.Int64("genre_id", genre.ID), zap.String("name", genre.Name))
	return genre, nil
}

func (s *genreService) Update(ctx context.Context, genre *entity.Genre) (*entity.Genre, error) {
	if violations := genre.Validate(); len(violations) > 0 {
		return nil, validationFailed(s.log, "Update genre", violations)
	}

	if err := s.genreRepo.Update(ctx, genre); err != nil {
		logFailure(s.log, "Failed to update genre", err, zap.Int64("genre_id", genre.ID))
		return nil, fmt.Errorf("update genre: %w", err)
	}

	s.log.Info("Genre updated", zap.Int64("genre_id", genre.ID))
	return genre, nil
}

// Delete also detaches the genre from every film
func (s *genreService) Delete(ctx context.Context, id int64) error {
	if err := s.genreRepo.Delete(ctx, id); err != nil {
		logFailure(s.log, "Failed to delete genre", err, zap.Int64("genre_id", id))
		return fmt.Errorf("delete genre: %w", err)
	}

	s.log.Info("Genre deleted", zap.Int64("genre_id", id))
	return nil
}
