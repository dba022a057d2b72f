package repository

import (
	"context"
	"fmt"

	"filmorate/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// FriendRepository stores directed friend links. A link is approved exactly
// when the reverse link exists too.
type FriendRepository interface {
	Add(ctx context.Context, userID, friendID int64) error
	Remove(ctx context.Context, userID, friendID int64) error
	// FriendIDs returns approved friends in ascending order
	FriendIDs(ctx context.Context, userID int64) ([]int64, error)
	// OutgoingIDs returns users that userID asked and who have not answered
	OutgoingIDs(ctx context.Context, userID int64) ([]int64, error)
	// IncomingIDs returns users waiting for userID to answer
	IncomingIDs(ctx context.Context, userID int64) ([]int64, error)
}

type friendRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFriendRepository(db database.PgxIface, log *zap.Logger) FriendRepository {
	return &friendRepository{
		db:  db,
		log: log.With(zap.String("repository", "friend")),
	}
}

// lockPair serialises concurrent changes to the same pair of users.
func lockPair(ctx context.Context, tx pgx.Tx, userID, friendID int64) error {
	_, err := tx.Exec(ctx, `SELECT id FROM users WHERE id IN ($1, $2) ORDER BY id FOR UPDATE`, userID, friendID)
	if err != nil {
		return fmt.Errorf("lock users: %w", err)
	}
	return nil
}

func (r *friendRepository) Add(ctx context.Context, userID, friendID int64) error {
	err := database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockPair(ctx, tx, userID, friendID); err != nil {
			return err
		}

		var reciprocated bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM friendships WHERE user_id = $1 AND friend_id = $2)`,
			friendID, userID,
		).Scan(&reciprocated)
		if err != nil {
			return fmt.Errorf("check reverse link: %w", err)
		}

		query := `
			INSERT INTO friendships (user_id, friend_id, approved)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, friend_id) DO UPDATE SET approved = EXCLUDED.approved
		`
		if _, err := tx.Exec(ctx, query, userID, friendID, reciprocated); err != nil {
			return fmt.Errorf("insert link: %w", err)
		}

		if reciprocated {
			_, err := tx.Exec(ctx,
				`UPDATE friendships SET approved = TRUE WHERE user_id = $1 AND friend_id = $2`,
				friendID, userID,
			)
			if err != nil {
				return fmt.Errorf("approve reverse link: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		r.log.Error("Failed to add friend",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
		)
		return fmt.Errorf("add friend: %w", err)
	}

	return nil
}

func (r *friendRepository) Remove(ctx context.Context, userID, friendID int64) error {
	err := database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockPair(ctx, tx, userID, friendID); err != nil {
			return err
		}

		_, err := tx.Exec(ctx,
			`DELETE FROM friendships WHERE user_id = $1 AND friend_id = $2`,
			userID, friendID,
		)
		if err != nil {
			return fmt.Errorf("delete link: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE friendships SET approved = FALSE WHERE user_id = $1 AND friend_id = $2`,
			friendID, userID,
		)
		if err != nil {
			return fmt.Errorf("unapprove reverse link: %w", err)
		}

		return nil
	})
	if err != nil {
		r.log.Error("Failed to remove friend",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
		)
		return fmt.Errorf("remove friend: %w", err)
	}

	return nil
}

func (r *friendRepository) FriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	return r.queryIDs(ctx, "friends",
		`SELECT friend_id FROM friendships WHERE user_id = $1 AND approved ORDER BY friend_id`, userID)
}

func (r *friendRepository) OutgoingIDs(ctx context.Context, userID int64) ([]int64, error) {
	return r.queryIDs(ctx, "outgoing requests",
		`SELECT friend_id FROM friendships WHERE user_id = $1 AND NOT approved ORDER BY friend_id`, userID)
}

func (r *friendRepository) IncomingIDs(ctx context.Context, userID int64) ([]int64, error) {
	return r.queryIDs(ctx, "incoming requests",
		`SELECT user_id FROM friendships WHERE friend_id = $1 AND NOT approved ORDER BY user_id`, userID)
}

func (r *friendRepository) queryIDs(ctx context.Context, what, query string, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find "+what,
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find %s: %w", what, err)
	}

	ids, err := collectIDs(rows)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", what, err)
	}

	return ids, nil
}
