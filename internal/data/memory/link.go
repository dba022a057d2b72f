package memory

import (
	"context"
)

type likeRepository struct {
	store *Store
}

func (r *likeRepository) Add(ctx context.Context, filmID, userID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.likes[filmID] == nil {
		s.likes[filmID] = make(map[int64]struct{})
	}
	s.likes[filmID][userID] = struct{}{}
	return nil
}

func (r *likeRepository) Remove(ctx context.Context, filmID, userID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.likes[filmID], userID)
	return nil
}

func (r *likeRepository) Count(ctx context.Context, filmID int64) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.likes[filmID])), nil
}

func (r *likeRepository) UserIDs(ctx context.Context, filmID int64) ([]int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedKeys(s.likes[filmID]), nil
}

type friendRepository struct {
	store *Store
}

func (r *friendRepository) Add(ctx context.Context, userID, friendID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, reciprocated := s.friends[friendID][userID]

	if s.friends[userID] == nil {
		s.friends[userID] = make(map[int64]bool)
	}
	s.friends[userID][friendID] = reciprocated

	if reciprocated {
		s.friends[friendID][userID] = true
	}
	return nil
}

func (r *friendRepository) Remove(ctx context.Context, userID, friendID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.friends[userID], friendID)

	if _, ok := s.friends[friendID][userID]; ok {
		s.friends[friendID][userID] = false
	}
	return nil
}

func (r *friendRepository) FriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	return r.links(userID, true), nil
}

func (r *friendRepository) OutgoingIDs(ctx context.Context, userID int64) ([]int64, error) {
	return r.links(userID, false), nil
}

func (r *friendRepository) IncomingIDs(ctx context.Context, userID int64) ([]int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	incoming := make(map[int64]struct{})
	for from, links := range s.friends {
		if approved, ok := links[userID]; ok && !approved {
			incoming[from] = struct{}{}
		}
	}
	return sortedKeys(incoming), nil
}

func (r *friendRepository) links(userID int64, approved bool) []int64 {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make(map[int64]struct{})
	for friendID, a := range s.friends[userID] {
		if a == approved {
			matched[friendID] = struct{}{}
		}
	}
	return sortedKeys(matched)
}
