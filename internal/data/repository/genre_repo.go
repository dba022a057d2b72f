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

type GenreRepository interface {
	Create(ctx context.Context, genre *entity.Genre) error
	Update(ctx context.Context, genre *entity.Genre) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entity.Genre, error)
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Genre, error)
	// FindByFilmIDs maps each film id to its genres ordered by genre id
	FindByFilmIDs(ctx context.Context, filmIDs []int64) (map[int64][]entity.Genre, error)
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	id, err := database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (int64, error) {
		id, err := nextID(ctx, tx, "genres", errs.EntityGenre, genre.ID)
		if err != nil {
			return 0, err
		}

		if _, err := tx.Exec(ctx, `INSERT INTO genres (id, name) VALUES ($1, $2)`, id, genre.Name); err != nil {
			if pgErrorCode(err) == pgUniqueViolation {
				return 0, errs.Duplicate(errs.EntityGenre, id)
			}
			return 0, fmt.Errorf("insert genre: %w", err)
		}

		return id, nil
	})
	if err != nil {
		if isTyped(err) {
			return err
		}
		r.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("name", genre.Name),
		)
		return fmt.Errorf("create genre: %w", err)
	}

	genre.ID = id
	return nil
}

func (r *genreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	result, err := r.db.Exec(ctx, `UPDATE genres SET name = $1 WHERE id = $2`, genre.Name, genre.ID)
	if err != nil {
		r.log.Error("Failed to update genre",
			zap.Error(err),
			zap.Int64("genre_id", genre.ID),
		)
		return fmt.Errorf("update genre: %w", err)
	}

	if result.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityGenre, genre.ID)
	}

	return nil
}

// Delete removes the genre; film links go with it (ON DELETE CASCADE)
func (r *genreRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete genre",
			zap.Error(err),
			zap.Int64("genre_id", id),
		)
		return fmt.Errorf("delete genre: %w", err)
	}

	if result.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityGenre, id)
	}

	return nil
}

func (r *genreRepository) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	query := `SELECT id, name FROM genres WHERE id = $1`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(
		&genre.ID,
		&genre.Name,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.Int64("genre_id", id),
		)
		return nil, fmt.Errorf("find genre by id: %w", err)
	}

	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	genres, err := r.queryGenres(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		r.log.Error("Failed to find all genres", zap.Error(err))
		return nil, fmt.Errorf("find genres: %w", err)
	}

	return genres, nil
}

func (r *genreRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Genre, error) {
	if len(ids) == 0 {
		return []*entity.Genre{}, nil
	}

	genres, err := r.queryGenres(ctx, `SELECT id, name FROM genres WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		r.log.Error("Failed to find genres by IDs",
			zap.Error(err),
			zap.Int64s("genre_ids", ids),
		)
		return nil, fmt.Errorf("find genres by ids: %w", err)
	}

	return genres, nil
}

func (r *genreRepository) FindByFilmIDs(ctx context.Context, filmIDs []int64) (map[int64][]entity.Genre, error) {
	result := make(map[int64][]entity.Genre, len(filmIDs))
	if len(filmIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT fg.film_id, g.id, g.name
		FROM film_genres fg
		INNER JOIN genres g ON g.id = fg.genre_id
		WHERE fg.film_id = ANY($1)
		ORDER BY fg.film_id, g.id
	`

	rows, err := r.db.Query(ctx, query, filmIDs)
	if err != nil {
		r.log.Error("Failed to find genres by film IDs",
			zap.Error(err),
			zap.Int("films", len(filmIDs)),
		)
		return nil, fmt.Errorf("find genres by film ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var filmID int64
		var genre entity.Genre
		if err := rows.Scan(&filmID, &genre.ID, &genre.Name); err != nil {
			r.log.Error("Failed to scan film genre row", zap.Error(err))
			return nil, fmt.Errorf("scan film genre row: %w", err)
		}
		result[filmID] = append(result[filmID], genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate film genres: %w", err)
	}

	return result, nil
}

func (r *genreRepository) queryGenres(ctx context.Context, query string, args ...any) ([]*entity.Genre, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []*entity.Genre{}
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	return genres, rows.Err()
}
