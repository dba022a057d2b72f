package memory

import (
	"context"

	"filmorate/internal/data/entity"
	"filmorate/pkg/errs"

	"go.uber.org/zap"
)

type userRepository struct {
	store *Store
	log   *zap.Logger
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, taken := s.users[user.ID]
	id, err := assignID(&s.nextUser, user.ID, taken, errs.EntityUser)
	if err != nil {
		return err
	}

	user.ID = id
	s.users[id] = *user

	r.log.Debug("User stored", zap.Int64("user_id", id))
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return errs.NotFound(errs.EntityUser, user.ID)
	}

	s.users[user.ID] = *user
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*entity.User, 0, len(s.users))
	for _, id := range sortedKeys(s.users) {
		user := s.users[id]
		users = append(users, &user)
	}
	return users, nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	users := make([]*entity.User, 0, len(wanted))
	for _, id := range sortedKeys(wanted) {
		if user, ok := s.users[id]; ok {
			users = append(users, &user)
		}
	}
	return users, nil
}
