package repository

import (
	"context"
	"fmt"

	"filmorate/internal/data/entity"
	"filmorate/pkg/database"
	"filmorate/pkg/errs"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MpaRepository interface {
	Create(ctx context.Context, mpa *entity.Mpa) error
	Update(ctx context.Context, mpa *entity.Mpa) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entity.Mpa, error)
	FindAll(ctx context.Context) ([]*entity.Mpa, error)
}

type mpaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMpaRepository(db database.PgxIface, log *zap.Logger) MpaRepository {
	return &mpaRepository{
		db:  db,
		log: log.With(zap.String("repository", "mpa")),
	}
}

func (r *mpaRepository) Create(ctx context.Context, mpa *entity.Mpa) error {
	id, err := database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (int64, error) {
		id, err := nextID(ctx, tx, "mpa", errs.EntityMpa, mpa.ID)
		if err != nil {
			return 0, err
		}

		if _, err := tx.Exec(ctx, `INSERT INTO mpa (id, name) VALUES ($1, $2)`, id, mpa.Name); err != nil {
			if pgErrorCode(err) == pgUniqueViolation {
				return 0, errs.Duplicate(errs.EntityMpa, id)
			}
			return 0, fmt.Errorf("insert mpa: %w", err)
		}

		return id, nil
	})
	if err != nil {
		if isTyped(err) {
			return err
		}
		r.log.Error("Failed to create mpa",
			zap.Error(err),
			zap.String("name", mpa.Name),
		)
		return fmt.Errorf("create mpa: %w", err)
	}

	mpa.ID = id
	return nil
}

func (r *mpaRepository) Update(ctx context.Context, mpa *entity.Mpa) error {
	result, err := r.db.Exec(ctx, `UPDATE mpa SET name = $1 WHERE id = $2`, mpa.Name, mpa.ID)
	if err != nil {
		r.log.Error("Failed to update mpa",
			zap.Error(err),
			zap.Int64("mpa_id", mpa.ID),
		)
		return fmt.Errorf("update mpa: %w", err)
	}

	if result.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityMpa, mpa.ID)
	}

	return nil
}

// Delete fails with Conflict while a film still references the rating
func (r *mpaRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM mpa WHERE id = $1`, id)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errs.Conflict(errs.EntityMpa, id, fmt.Sprintf("mpa with id %d is used by films", id))
		}
		r.log.Error("Failed to delete mpa",
			zap.Error(err),
			zap.Int64("mpa_id", id),
		)
		return fmt.Errorf("delete mpa: %w", err)
	}

	if result.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityMpa, id)
	}

	return nil
}

func (r *mpaRepository) FindByID(ctx context.Context, id int64) (*entity.Mpa, error) {
	var mpa entity.Mpa
	err := r.db.QueryRow(ctx, `SELECT id, name FROM mpa WHERE id = $1`, id).Scan(
		&mpa.ID,
		&mpa.Name,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find mpa by ID",
			zap.Error(err),
			zap.Int64("mpa_id", id),
		)
		return nil, fmt.Errorf("find mpa by id: %w", err)
	}

	return &mpa, nil
}

func (r *mpaRepository) FindAll(ctx context.Context) ([]*entity.Mpa, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM mpa ORDER BY id`)
	if err != nil {
		r.log.Error("Failed to find all mpa", zap.Error(err))
		return nil, fmt.Errorf("find mpa: %w", err)
	}
	defer rows.Close()

	ratings := []*entity.Mpa{}
	for rows.Next() {
		var mpa entity.Mpa
		if err := rows.Scan(&mpa.ID, &mpa.Name); err != nil {
			r.log.Error("Failed to scan mpa row", zap.Error(err))
			return nil, fmt.Errorf("scan mpa row: %w", err)
		}
		ratings = append(ratings, &mpa)
	}

	return ratings, rows.Err()
}
