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

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	// FindByIDs returns the users that exist, ordered by id
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.User, error)
}

const userColumns = `id, email, login, name, birthday`

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	id, err := database.WithTransactionResult(ctx, ur.db, func(tx pgx.Tx) (int64, error) {
		id, err := nextID(ctx, tx, "users", errs.EntityUser, user.ID)
		if err != nil {
			return 0, err
		}

		query := `
			INSERT INTO users (id, email, login, name, birthday)
			VALUES ($1, $2, $3, $4, $5)
		`
		_, err = tx.Exec(ctx, query,
			id,
			user.Email,
			user.Login,
			user.Name,
			user.Birthday,
		)
		if err != nil {
			if pgErrorCode(err) == pgUniqueViolation {
				return 0, errs.Duplicate(errs.EntityUser, id)
			}
			return 0, fmt.Errorf("insert user: %w", err)
		}

		return id, nil
	})
	if err != nil {
		if isTyped(err) {
			return err
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("login", user.Login),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	user.ID = id
	return nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET email = $1, login = $2, name = $3, birthday = $4
		WHERE id = $5
	`

	result, err := ur.db.Exec(ctx, query,
		user.Email,
		user.Login,
		user.Name,
		user.Birthday,
		user.ID,
	)
	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
		)
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return errs.NotFound(errs.EntityUser, user.ID)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user: %w", err)
	}

	return user, nil
}

func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	users, err := ur.queryUsers(ctx, query)
	if err != nil {
		ur.log.Error("Failed to find all users", zap.Error(err))
		return nil, fmt.Errorf("find users: %w", err)
	}

	return users, nil
}

func (ur *userRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1) ORDER BY id`

	users, err := ur.queryUsers(ctx, query, ids)
	if err != nil {
		ur.log.Error("Failed to find users by IDs",
			zap.Error(err),
			zap.Int64s("user_ids", ids),
		)
		return nil, fmt.Errorf("find users by ids: %w", err)
	}

	return users, nil
}

func (ur *userRepository) queryUsers(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	rows, err := ur.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*entity.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func scanUser(row scanner) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Login,
		&user.Name,
		&user.Birthday,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
