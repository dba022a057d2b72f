package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"filmorate/internal/data/entity"
	"filmorate/pkg/errs"
)

type genreRepository struct {
	store *Store
}

func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, taken := s.genres[genre.ID]
	id, err := assignID(&s.nextGenre, genre.ID, taken, errs.EntityGenre)
	if err != nil {
		return err
	}

	genre.ID = id
	s.genres[id] = *genre
	return nil
}

func (r *genreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.genres[genre.ID]; !ok {
		return errs.NotFound(errs.EntityGenre, genre.ID)
	}

	s.genres[genre.ID] = *genre
	return nil
}

// Delete detaches the genre from every film.
func (r *genreRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.genres[id]; !ok {
		return errs.NotFound(errs.EntityGenre, id)
	}

	delete(s.genres, id)
	for _, rec := range s.films {
		rec.genreIDs = slices.DeleteFunc(rec.genreIDs, func(g int64) bool { return g == id })
	}
	return nil
}

func (r *genreRepository) FindByID(ctx context.Context, id int64) (*entity.Genre, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	genre, ok := s.genres[id]
	if !ok {
		return nil, nil
	}
	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	genres := make([]*entity.Genre, 0, len(s.genres))
	for _, id := range sortedKeys(s.genres) {
		genre := s.genres[id]
		genres = append(genres, &genre)
	}
	return genres, nil
}

func (r *genreRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Genre, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	genres := make([]*entity.Genre, 0, len(ids))
	for _, id := range ids {
		if genre, ok := s.genres[id]; ok {
			genres = append(genres, &genre)
		}
	}
	slices.SortFunc(genres, func(a, b *entity.Genre) int { return cmp.Compare(a.ID, b.ID) })
	return slices.CompactFunc(genres, func(a, b *entity.Genre) bool { return a.ID == b.ID }), nil
}

func (r *genreRepository) FindByFilmIDs(ctx context.Context, filmIDs []int64) (map[int64][]entity.Genre, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[int64][]entity.Genre, len(filmIDs))
	for _, filmID := range filmIDs {
		rec, ok := s.films[filmID]
		if !ok {
			continue
		}
		for _, genreID := range rec.genreIDs {
			if genre, ok := s.genres[genreID]; ok {
				result[filmID] = append(result[filmID], genre)
			}
		}
	}
	return result, nil
}

type mpaRepository struct {
	store *Store
}

func (r *mpaRepository) Create(ctx context.Context, mpa *entity.Mpa) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, taken := s.mpa[mpa.ID]
	id, err := assignID(&s.nextMpa, mpa.ID, taken, errs.EntityMpa)
	if err != nil {
		return err
	}

	mpa.ID = id
	s.mpa[id] = *mpa
	return nil
}

func (r *mpaRepository) Update(ctx context.Context, mpa *entity.Mpa) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mpa[mpa.ID]; !ok {
		return errs.NotFound(errs.EntityMpa, mpa.ID)
	}

	s.mpa[mpa.ID] = *mpa
	return nil
}

// Delete refuses ratings that films still reference.
func (r *mpaRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mpa[id]; !ok {
		return errs.NotFound(errs.EntityMpa, id)
	}
	if s.countByMpa(id) > 0 {
		return errs.Conflict(errs.EntityMpa, id, fmt.Sprintf("mpa with id %d is used by films", id))
	}

	delete(s.mpa, id)
	return nil
}

func (r *mpaRepository) FindByID(ctx context.Context, id int64) (*entity.Mpa, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	mpa, ok := s.mpa[id]
	if !ok {
		return nil, nil
	}
	return &mpa, nil
}

func (r *mpaRepository) FindAll(ctx context.Context) ([]*entity.Mpa, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ratings := make([]*entity.Mpa, 0, len(s.mpa))
	for _, id := range sortedKeys(s.mpa) {
		mpa := s.mpa[id]
		ratings = append(ratings, &mpa)
	}
	return ratings, nil
}
