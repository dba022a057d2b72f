package repository

import (
	"context"
	"fmt"

	"filmorate/pkg/database"

	"go.uber.org/zap"
)

// LikeRepository is a pure link store; callers check that film and user exist.
type LikeRepository interface {
	Add(ctx context.Context, filmID, userID int64) error
	Remove(ctx context.Context, filmID, userID int64) error
	Count(ctx context.Context, filmID int64) (int64, error)
	UserIDs(ctx context.Context, filmID int64) ([]int64, error)
}

type likeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLikeRepository(db database.PgxIface, log *zap.Logger) LikeRepository {
	return &likeRepository{
		db:  db,
		log: log.With(zap.String("repository", "like")),
	}
}

func (r *likeRepository) Add(ctx context.Context, filmID, userID int64) error {
	query := `INSERT INTO film_likes (film_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	if _, err := r.db.Exec(ctx, query, filmID, userID); err != nil {
		r.log.Error("Failed to add like",
			zap.Error(err),
			zap.Int64("film_id", filmID),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("add like: %w", err)
	}

	return nil
}

func (r *likeRepository) Remove(ctx context.Context, filmID, userID int64) error {
	query := `DELETE FROM film_likes WHERE film_id = $1 AND user_id = $2`

	if _, err := r.db.Exec(ctx, query, filmID, userID); err != nil {
		r.log.Error("Failed to remove like",
			zap.Error(err),
			zap.Int64("film_id", filmID),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("remove like: %w", err)
	}

	return nil
}

func (r *likeRepository) Count(ctx context.Context, filmID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM film_likes WHERE film_id = $1`, filmID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count likes",
			zap.Error(err),
			zap.Int64("film_id", filmID),
		)
		return 0, fmt.Errorf("count likes: %w", err)
	}

	return count, nil
}

func (r *likeRepository) UserIDs(ctx context.Context, filmID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM film_likes WHERE film_id = $1 ORDER BY user_id`, filmID)
	if err != nil {
		r.log.Error("Failed to find likes",
			zap.Error(err),
			zap.Int64("film_id", filmID),
		)
		return nil, fmt.Errorf("find likes: %w", err)
	}

	ids, err := collectIDs(rows)
	if err != nil {
		return nil, fmt.Errorf("scan likes: %w", err)
	}

	return ids, nil
}
