package repository

import (
	"context"
	"errors"
	"fmt"

	"filmorate/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// nextID picks the id for a new row: max(next sequence value, supplied).
// A supplied id that already exists is a Duplicate. Explicit ids take a
// per-table advisory lock held until commit, and the sequence only ever
// moves forward so later rows never reuse a supplied id.
func nextID(ctx context.Context, q querier, table, entityName string, supplied int64) (int64, error) {
	if supplied > 0 {
		if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, table); err != nil {
			return 0, fmt.Errorf("lock %s ids: %w", entityName, err)
		}

		var exists bool
		query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)`, table)
		if err := q.QueryRow(ctx, query, supplied).Scan(&exists); err != nil {
			return 0, fmt.Errorf("check %s id: %w", entityName, err)
		}
		if exists {
			return 0, errs.Duplicate(entityName, supplied)
		}
	}

	var next int64
	query := fmt.Sprintf(`SELECT nextval(pg_get_serial_sequence('%s', 'id'))`, table)
	if err := q.QueryRow(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("next %s id: %w", entityName, err)
	}

	if supplied <= next {
		return next, nil
	}

	query = fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), GREATEST($1, pg_sequence_last_value(pg_get_serial_sequence('%[1]s', 'id')::regclass)))`,
		table,
	)
	if _, err := q.Exec(ctx, query, supplied); err != nil {
		return 0, fmt.Errorf("advance %s id: %w", entityName, err)
	}

	return supplied, nil
}

// referenceError turns a foreign key violation on a film write into
// NotFound for the missing rating or genre.
func referenceError(err error, entityName string, id int64) error {
	if pgErrorCode(err) == pgForeignKeyViolation {
		return errs.NotFound(entityName, id)
	}
	return err
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isTyped reports errors that already carry a classification and should
// pass through without being logged as failures.
func isTyped(err error) bool {
	return errs.KindOf(err) != errs.KindInternal
}

func collectIDs(rows pgx.Rows) ([]int64, error) {
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
