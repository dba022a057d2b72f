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

// FilmRepository stores films and their genre links. Returned films carry
// the mpa id and name; genres are loaded through GenreRepository.
type FilmRepository interface {
	Create(ctx context.Context, film *entity.Film) error
	Update(ctx context.Context, film *entity.Film) error
	FindByID(ctx context.Context, id int64) (*entity.Film, error)
	FindAll(ctx context.Context) ([]*entity.Film, error)
	FindPopular(ctx context.Context, limit int) ([]*entity.Film, error)
	CountByMpa(ctx context.Context, mpaID int64) (int64, error)
}

const filmColumns = `f.id, f.name, f.description, f.release_date, f.duration, m.id, m.name`

type filmRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFilmRepository(db database.PgxIface, log *zap.Logger) FilmRepository {
	return &filmRepository{
		db:  db,
		log: log.With(zap.String("repository", "film")),
	}
}

// Create assigns the film id and writes the film row with its genre links in one transaction
func (r *filmRepository) Create(ctx context.Context, film *entity.Film) error {
	id, err := database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (int64, error) {
		id, err := nextID(ctx, tx, "films", errs.EntityFilm, film.ID)
		if err != nil {
			return 0, err
		}

		query := `
			INSERT INTO films (id, name, description, release_date, duration, mpa_id)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err = tx.Exec(ctx, query,
			id,
			film.Name,
			film.Description,
			film.ReleaseDate,
			film.Duration,
			film.MpaID(),
		)
		if err != nil {
			if pgErrorCode(err) == pgUniqueViolation {
				return 0, errs.Duplicate(errs.EntityFilm, id)
			}
			if err := referenceError(err, errs.EntityMpa, film.MpaID()); isTyped(err) {
				return 0, err
			}
			return 0, fmt.Errorf("insert film: %w", err)
		}

		if err := insertFilmGenres(ctx, tx, id, film.GenreIDs()); err != nil {
			return 0, err
		}

		return id, nil
	})
	if err != nil {
		if isTyped(err) {
			return err
		}
		r.log.Error("Failed to create film",
			zap.Error(err),
			zap.String("name", film.Name),
		)
		return fmt.Errorf("create film: %w", err)
	}

	film.ID = id
	return nil
}

// Update replaces every column and the genre links of an existing film
func (r *filmRepository) Update(ctx context.Context, film *entity.Film) error {
	err := database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE films
			SET name = $1, description = $2, release_date = $3, duration = $4, mpa_id = $5
			WHERE id = $6
		`
		result, err := tx.Exec(ctx, query,
			film.Name,
			film.Description,
			film.ReleaseDate,
			film.Duration,
			film.MpaID(),
			film.ID,
		)
		if err != nil {
			if err := referenceError(err, errs.EntityMpa, film.MpaID()); isTyped(err) {
				return err
			}
			return fmt.Errorf("update film row: %w", err)
		}
		if result.RowsAffected() == 0 {
			return errs.NotFound(errs.EntityFilm, film.ID)
		}

		return replaceFilmGenres(ctx, tx, film.ID, film.GenreIDs())
	})
	if err != nil {
		if isTyped(err) {
			return err
		}
		r.log.Error("Failed to update film",
			zap.Error(err),
			zap.Int64("film_id", film.ID),
		)
		return fmt.Errorf("update film: %w", err)
	}

	return nil
}

func (r *filmRepository) FindByID(ctx context.Context, id int64) (*entity.Film, error) {
	query := `SELECT ` + filmColumns + `
		FROM films f
		JOIN mpa m ON m.id = f.mpa_id
		WHERE f.id = $1
	`

	film, err := scanFilm(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find film by ID",
			zap.Error(err),
			zap.Int64("film_id", id),
		)
		return nil, fmt.Errorf("find film: %w", err)
	}

	return film, nil
}

func (r *filmRepository) FindAll(ctx context.Context) ([]*entity.Film, error) {
	query := `SELECT ` + filmColumns + `
		FROM films f
		JOIN mpa m ON m.id = f.mpa_id
		ORDER BY f.id
	`

	films, err := r.queryFilms(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all films", zap.Error(err))
		return nil, fmt.Errorf("find films: %w", err)
	}

	return films, nil
}

// FindPopular orders by like count, most liked first, ties by id
func (r *filmRepository) FindPopular(ctx context.Context, limit int) ([]*entity.Film, error) {
	query := `SELECT ` + filmColumns + `
		FROM films f
		JOIN mpa m ON m.id = f.mpa_id
		LEFT JOIN film_likes l ON l.film_id = f.id
		GROUP BY f.id, m.id
		ORDER BY COUNT(l.user_id) DESC, f.id
		LIMIT $1
	`

	films, err := r.queryFilms(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find popular films",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find popular films: %w", err)
	}

	return films, nil
}

func (r *filmRepository) CountByMpa(ctx context.Context, mpaID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM films WHERE mpa_id = $1`, mpaID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count films by mpa",
			zap.Error(err),
			zap.Int64("mpa_id", mpaID),
		)
		return 0, fmt.Errorf("count films by mpa: %w", err)
	}

	return count, nil
}

func (r *filmRepository) queryFilms(ctx context.Context, query string, args ...any) ([]*entity.Film, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	films := []*entity.Film{}
	for rows.Next() {
		film, err := scanFilm(rows)
		if err != nil {
			return nil, fmt.Errorf("scan film row: %w", err)
		}
		films = append(films, film)
	}

	return films, rows.Err()
}

func scanFilm(row scanner) (*entity.Film, error) {
	film := entity.Film{Mpa: &entity.Mpa{}}
	err := row.Scan(
		&film.ID,
		&film.Name,
		&film.Description,
		&film.ReleaseDate,
		&film.Duration,
		&film.Mpa.ID,
		&film.Mpa.Name,
	)
	if err != nil {
		return nil, err
	}
	return &film, nil
}
