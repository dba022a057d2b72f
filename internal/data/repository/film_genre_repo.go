package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"filmorate/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Film-genre links are only written inside the film transaction.

func replaceFilmGenres(ctx context.Context, tx pgx.Tx, filmID int64, genreIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM film_genres WHERE film_id = $1`, filmID); err != nil {
		return fmt.Errorf("delete film genres: %w", err)
	}
	return insertFilmGenres(ctx, tx, filmID, genreIDs)
}

func insertFilmGenres(ctx context.Context, tx pgx.Tx, filmID int64, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}

	// Build batch insert
	var query strings.Builder
	query.WriteString(`INSERT INTO film_genres (film_id, genre_id) VALUES `)
	args := make([]any, 0, len(genreIDs)*2)

	for i, genreID := range genreIDs {
		if i > 0 {
			query.WriteString(", ")
		}
		fmt.Fprintf(&query, "($%d, $%d)", i*2+1, i*2+2)
		args = append(args, filmID, genreID)
	}
	query.WriteString(` ON CONFLICT DO NOTHING`)

	if _, err := tx.Exec(ctx, query.String(), args...); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return missingGenre(err, genreIDs)
		}
		return fmt.Errorf("insert film genres: %w", err)
	}

	return nil
}

// missingGenre names the genre from the violation detail
// ("Key (genre_id)=(42) is not present ..."), falling back to the first id.
func missingGenre(err error, genreIDs []int64) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		for _, id := range genreIDs {
			if strings.Contains(pgErr.Detail, fmt.Sprintf("=(%d)", id)) {
				return errs.NotFound(errs.EntityGenre, id)
			}
		}
	}
	return errs.NotFound(errs.EntityGenre, genreIDs[0])
}
