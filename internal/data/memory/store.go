// Package memory implements the repository interfaces on process memory.
// One lock guards every map so each call is atomic, the same guarantee the
// postgres driver gets from a transaction.
package memory

import (
	"slices"
	"sync"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/pkg/errs"

	"go.uber.org/zap"
)

type filmRecord struct {
	film     entity.Film
	mpaID    int64
	genreIDs []int64
}

type Store struct {
	mu sync.RWMutex

	films   map[int64]*filmRecord
	users   map[int64]entity.User
	genres  map[int64]entity.Genre
	mpa     map[int64]entity.Mpa
	likes   map[int64]map[int64]struct{}
	friends map[int64]map[int64]bool

	nextFilm  int64
	nextUser  int64
	nextGenre int64
	nextMpa   int64
}

// NewStore returns a store seeded with the default genres and ratings.
func NewStore() *Store {
	s := &Store{
		films:     make(map[int64]*filmRecord),
		users:     make(map[int64]entity.User),
		genres:    make(map[int64]entity.Genre),
		mpa:       make(map[int64]entity.Mpa),
		likes:     make(map[int64]map[int64]struct{}),
		friends:   make(map[int64]map[int64]bool),
		nextFilm:  1,
		nextUser:  1,
		nextGenre: 1,
		nextMpa:   1,
	}

	for _, g := range entity.DefaultGenres {
		s.genres[g.ID] = g
		s.nextGenre = max(s.nextGenre, g.ID+1)
	}
	for _, m := range entity.DefaultMpa {
		s.mpa[m.ID] = m
		s.nextMpa = max(s.nextMpa, m.ID+1)
	}

	return s
}

// NewRepository wires every repository to one fresh store.
func NewRepository(log *zap.Logger) *repository.Repository {
	s := NewStore()
	log = log.With(zap.String("repository", "memory"))

	return &repository.Repository{
		Film:   &filmRepository{store: s, log: log},
		User:   &userRepository{store: s, log: log},
		Genre:  &genreRepository{store: s},
		Mpa:    &mpaRepository{store: s},
		Like:   &likeRepository{store: s},
		Friend: &friendRepository{store: s},
	}
}

// assignID applies id = max(next, supplied) and moves the counter past it.
// Callers hold the write lock.
func assignID(next *int64, supplied int64, taken bool, entityName string) (int64, error) {
	if supplied > 0 && taken {
		return 0, errs.Duplicate(entityName, supplied)
	}

	id := max(*next, supplied)
	*next = id + 1
	return id, nil
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
