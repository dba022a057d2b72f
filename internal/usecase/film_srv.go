package usecase

import (
	"context"
	"fmt"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/pkg/errs"

	"go.uber.org/zap"
)

type FilmService interface {
	FindAll(ctx context.Context) ([]*entity.Film, error)
	FindByID(ctx context.Context, id int64) (*entity.Film, error)
	Add(ctx context.Context, film *entity.Film) (*entity.Film, error)
	Update(ctx context.Context, film *entity.Film) (*entity.Film, error)
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error
	Likes(ctx context.Context, filmID int64) (*FilmLikes, error)
	Popular(ctx context.Context, count int) ([]*entity.Film, error)
}

type FilmLikes struct {
	FilmID  int64
	Count   int64
	UserIDs []int64
}

type filmService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFilmService(repo *repository.Repository, log *zap.Logger) FilmService {
	return &filmService{
		repo: repo,
		log:  log.With(zap.String("service", "film")),
	}
}

func (s *filmService) FindAll(ctx context.Context) ([]*entity.Film, error) {
	films, err := s.repo.Film.FindAll(ctx)
	if err != nil {
		logFailure(s.log, "Failed to get films", err)
		return nil, fmt.Errorf("get films: %w", err)
	}

	if err := s.attachGenres(ctx, films); err != nil {
		return nil, err
	}

	return films, nil
}

func (s *filmService) FindByID(ctx context.Context, id int64) (*entity.Film, error) {
	film, err := s.requireFilm(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.attachGenres(ctx, []*entity.Film{film}); err != nil {
		return nil, err
	}

	return film, nil
}

// Add validates the film, checks its rating and genres exist, then stores it
func (s *filmService) Add(ctx context.Context, film *entity.Film) (*entity.Film, error) {
	if violations := film.Validate(); len(violations) > 0 {
		return nil, validationFailed(s.log, "Create film", violations)
	}

	if err := s.checkReferences(ctx, film); err != nil {
		return nil, err
	}

	if err := s.repo.Film.Create(ctx, film); err != nil {
		logFailure(s.log, "Failed to create film", err, zap.String("name", film.Name))
		return nil, fmt.Errorf("create film: %w", err)
	}

	s.log.Info("Film created",
		zap.Int64("film_id", film.ID),
		zap.String("name", film.Name),
	)

	return s.FindByID(ctx, film.ID)
}

// Update replaces the whole film, genre links included
func (s *filmService) Update(ctx context.Context, film *entity.Film) (*entity.Film, error) {
	if violations := film.Validate(); len(violations) > 0 {
		return nil, validationFailed(s.log, "Update film", violations)
	}

	if _, err := s.requireFilm(ctx, film.ID); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, film); err != nil {
		return nil, err
	}

	if err := s.repo.Film.Update(ctx, film); err != nil {
		logFailure(s.log, "Failed to update film", err, zap.Int64("film_id", film.ID))
		return nil, fmt.Errorf("update film: %w", err)
	}

	s.log.Info("Film updated", zap.Int64("film_id", film.ID))

	return s.FindByID(ctx, film.ID)
}

func (s *filmService) AddLike(ctx context.Context, filmID, userID int64) error {
	if err := s.requireLikeParties(ctx, filmID, userID); err != nil {
		return err
	}

	if err := s.repo.Like.Add(ctx, filmID, userID); err != nil {
		logFailure(s.log, "Failed to add like", err,
			zap.Int64("film_id", filmID),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("add like: %w", err)
	}

	s.log.Info("Like added",
		zap.Int64("film_id", filmID),
		zap.Int64("user_id", userID),
	)
	return nil
}

func (s *filmService) RemoveLike(ctx context.Context, filmID, userID int64) error {
	if err := s.requireLikeParties(ctx, filmID, userID); err != nil {
		return err
	}

	if err := s.repo.Like.Remove(ctx, filmID, userID); err != nil {
		logFailure(s.log, "Failed to remove like", err,
			zap.Int64("film_id", filmID),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("remove like: %w", err)
	}

	s.log.Info("Like removed",
		zap.Int64("film_id", filmID),
		zap.Int64("user_id", userID),
	)
	return nil
}

func (s *filmService) Likes(ctx context.Context, filmID int64) (*FilmLikes, error) {
	if _, err := s.requireFilm(ctx, filmID); err != nil {
		return nil, err
	}

	userIDs, err := s.repo.Like.UserIDs(ctx, filmID)
	if err != nil {
		logFailure(s.log, "Failed to get likes", err, zap.Int64("film_id", filmID))
		return nil, fmt.Errorf("get likes: %w", err)
	}

	return &FilmLikes{
		FilmID:  filmID,
		Count:   int64(len(userIDs)),
		UserIDs: userIDs,
	}, nil
}

// Popular returns at most count films, most liked first, ties by id
func (s *filmService) Popular(ctx context.Context, count int) ([]*entity.Film, error) {
	if count <= 0 {
		return nil, errs.Invalid("count", "Must be a positive number")
	}

	films, err := s.repo.Film.FindPopular(ctx, count)
	if err != nil {
		logFailure(s.log, "Failed to get popular films", err, zap.Int("count", count))
		return nil, fmt.Errorf("get popular films: %w", err)
	}

	if err := s.attachGenres(ctx, films); err != nil {
		return nil, err
	}

	return films, nil
}

func (s *filmService) requireFilm(ctx context.Context, id int64) (*entity.Film, error) {
	film, err := s.repo.Film.FindByID(ctx, id)
	if err != nil {
		logFailure(s.log, "Failed to get film by ID", err, zap.Int64("film_id", id))
		return nil, fmt.Errorf("get film by id: %w", err)
	}
	if film == nil {
		return nil, errs.NotFound(errs.EntityFilm, id)
	}
	return film, nil
}

// requireLikeParties checks the user before the film.
func (s *filmService) requireLikeParties(ctx context.Context, filmID, userID int64) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		logFailure(s.log, "Failed to get user by ID", err, zap.Int64("user_id", userID))
		return fmt.Errorf("get user by id: %w", err)
	}
	if user == nil {
		return errs.NotFound(errs.EntityUser, userID)
	}

	_, err = s.requireFilm(ctx, filmID)
	return err
}

func (s *filmService) checkReferences(ctx context.Context, film *entity.Film) error {
	mpa, err := s.repo.Mpa.FindByID(ctx, film.MpaID())
	if err != nil {
		logFailure(s.log, "Failed to get mpa", err, zap.Int64("mpa_id", film.MpaID()))
		return fmt.Errorf("get mpa: %w", err)
	}
	if mpa == nil {
		return errs.NotFound(errs.EntityMpa, film.MpaID())
	}

	ids := film.GenreIDs()
	if len(ids) == 0 {
		return nil
	}

	genres, err := s.repo.Genre.FindByIDs(ctx, ids)
	if err != nil {
		logFailure(s.log, "Failed to get genres", err, zap.Int64s("genre_ids", ids))
		return fmt.Errorf("get genres: %w", err)
	}

	found := make(map[int64]struct{}, len(genres))
	for _, g := range genres {
		found[g.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return errs.NotFound(errs.EntityGenre, id)
		}
	}

	return nil
}

// attachGenres loads genres for all films in one query.
func (s *filmService) attachGenres(ctx context.Context, films []*entity.Film) error {
	if len(films) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(films))
	for _, f := range films {
		ids = append(ids, f.ID)
	}

	genres, err := s.repo.Genre.FindByFilmIDs(ctx, ids)
	if err != nil {
		logFailure(s.log, "Failed to get film genres", err, zap.Int("films", len(films)))
		return fmt.Errorf("get film genres: %w", err)
	}

	for _, f := range films {
		f.Genres = genres[f.ID]
		if f.Genres == nil {
			f.Genres = []entity.Genre{}
		}
	}

	return nil
}
