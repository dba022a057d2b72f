package usecase

import (
	"context"
	"fmt"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/pkg/errs"

	"go.uber.org/zap"
)

type MpaService interface {
	FindAll(ctx context.Context) ([]*entity.Mpa, error)
	FindByID(ctx context.Context, id int64) (*entity.Mpa, error)
	Add(ctx context.Context, mpa *entity.Mpa) (*entity.Mpa, error)
	Update(ctx context.Context, mpa *entity.Mpa) (*entity.Mpa, error)
	Delete(ctx context.Context, id int64) error
}

type mpaService struct {
	mpaRepo  repository.MpaRepository
	filmRepo repository.FilmRepository
	log      *zap.Logger
}

func NewMpaService(mpaRepo repository.MpaRepository, filmRepo repository.FilmRepository, log *zap.Logger) MpaService {
	return &mpaService{
		mpaRepo:  mpaRepo,
		filmRepo: filmRepo,
		log:      log.With(zap.String("service", "mpa")),
	}
}

func (s *mpaService) FindAll(ctx context.Context) ([]*entity.Mpa, error) {
	ratings, err := s.mpaRepo.FindAll(ctx)
	if err != nil {
		logFailure(s.log, "Failed to get mpa list", err)
		return nil, fmt.Errorf("get mpa: %w", err)
	}
	return ratings, nil
}

func (s *mpaService) FindByID(ctx context.Context, id int64) (*entity.Mpa, error) {
	mpa, err := s.mpaRepo.FindByID(ctx, id)
	if err != nil {
		logFailure(s.log, "Failed to get mpa", err, zap.Int64("mpa_id", id))
		return nil, fmt.Errorf("get mpa: %w", err)
	}
	if mpa == nil {
		return nil, errs.NotFound(errs.EntityMpa, id)
	}
	return mpa, nil
}

func (s *mpaService) Add(ctx context.Context, mpa *entity.Mpa) (*entity.Mpa, error) {
	if violations := mpa.Validate(); len(violations) > 0 {
		return nil, validationFailed(s.log, "Create mpa", violations)
	}

	if err := s.mpaRepo.Create(ctx, mpa); err != nil {
		logFailure(s.log, "Failed to create mpa", err, zap.String("name", mpa.Name))
		return nil, fmt.Errorf("create mpa: %w", err)
	}

	s.log.Info("Mpa created", zap.Int64("mpa_id", mpa.ID), zap.String("name", mpa.Name))
	return mpa, nil
}

func (s *mpaService) Update(ctx context.Context, mpa *entity.Mpa) (*entity.Mpa, error) {
	if violations := mpa.Validate(); len(violations) > 0 {
		return nil, validationFailed(s.log, "Update mpa", violations)
	}

	if err := s.mpaRepo.Update(ctx, mpa); err != nil {
		logFailure(s.log, "Failed to update mpa", err, zap.Int64("mpa_id", mpa.ID))
		return nil, fmt.Errorf("update mpa: %w", err)
	}

	s.log.Info("Mpa updated", zap.Int64("mpa_id", mpa.ID))
	return mpa, nil
}

// Delete refuses while any film is rated with it
func (s *mpaService) Delete(ctx context.Context, id int64) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}

	used, err := s.filmRepo.CountByMpa(ctx, id)
	if err != nil {
		logFailure(s.log, "Failed to count films by mpa", err, zap.Int64("mpa_id", id))
		return fmt.Errorf("delete mpa: %w", err)
	}
	if used > 0 {
		return errs.Conflict(errs.EntityMpa, id, fmt.Sprintf("mpa with id %d is used by %d films", id, used))
	}

	if err := s.mpaRepo.Delete(ctx, id); err != nil {
		logFailure(s.log, "Failed to delete mpa", err, zap.Int64("mpa_id", id))
		return fmt.Errorf("delete mpa: %w", err)
	}

	s.log.Info("Mpa deleted", zap.Int64("mpa_id", id))
	return nil
}
