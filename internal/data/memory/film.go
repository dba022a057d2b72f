package memory

import (
	"cmp"
	"context"
	"slices"

	"filmorate/internal/data/entity"
	"filmorate/pkg/errs"

	"go.uber.org/zap"
)

type filmRepository struct {
	store *Store
	log   *zap.Logger
}

func (r *filmRepository) Create(ctx context.Context, film *entity.Film) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkFilmReferences(film); err != nil {
		return err
	}

	_, taken := s.films[film.ID]
	id, err := assignID(&s.nextFilm, film.ID, taken, errs.EntityFilm)
	if err != nil {
		return err
	}

	film.ID = id
	s.films[id] = newFilmRecord(film)

	r.log.Debug("Film stored", zap.Int64("film_id", id))
	return nil
}

func (r *filmRepository) Update(ctx context.Context, film *entity.Film) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[film.ID]; !ok {
		return errs.NotFound(errs.EntityFilm, film.ID)
	}
	if err := s.checkFilmReferences(film); err != nil {
		return err
	}

	s.films[film.ID] = newFilmRecord(film)
	return nil
}

func (r *filmRepository) FindByID(ctx context.Context, id int64) (*entity.Film, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.films[id]
	if !ok {
		return nil, nil
	}
	return s.filmOf(rec), nil
}

func (r *filmRepository) FindAll(ctx context.Context) ([]*entity.Film, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	films := make([]*entity.Film, 0, len(s.films))
	for _, id := range sortedKeys(s.films) {
		films = append(films, s.filmOf(s.films[id]))
	}
	return films, nil
}

func (r *filmRepository) FindPopular(ctx context.Context, limit int) ([]*entity.Film, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := sortedKeys(s.films)
	slices.SortStableFunc(ids, func(a, b int64) int {
		return cmp.Compare(len(s.likes[b]), len(s.likes[a]))
	})

	if limit < len(ids) {
		ids = ids[:max(limit, 0)]
	}

	films := make([]*entity.Film, 0, len(ids))
	for _, id := range ids {
		films = append(films, s.filmOf(s.films[id]))
	}
	return films, nil
}

func (r *filmRepository) CountByMpa(ctx context.Context, mpaID int64) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.countByMpa(mpaID), nil
}

func (s *Store) countByMpa(mpaID int64) int64 {
	var count int64
	for _, rec := range s.films {
		if rec.mpaID == mpaID {
			count++
		}
	}
	return count
}

// checkFilmReferences is the in-memory counterpart of the foreign keys:
// a rating or genre deleted since the caller looked it up fails the write.
// Callers hold the write lock.
func (s *Store) checkFilmReferences(film *entity.Film) error {
	if _, ok := s.mpa[film.MpaID()]; !ok {
		return errs.NotFound(errs.EntityMpa, film.MpaID())
	}
	for _, id := range film.GenreIDs() {
		if _, ok := s.genres[id]; !ok {
			return errs.NotFound(errs.EntityGenre, id)
		}
	}
	return nil
}

func newFilmRecord(film *entity.Film) *filmRecord {
	rec := &filmRecord{
		film:     *film,
		mpaID:    film.MpaID(),
		genreIDs: film.GenreIDs(),
	}
	rec.film.Mpa = nil
	rec.film.Genres = nil
	return rec
}

// filmOf mirrors the postgres join: the mpa comes back with its name and
// genres are left to GenreRepository. Callers hold at least the read lock.
func (s *Store) filmOf(rec *filmRecord) *entity.Film {
	film := rec.film
	mpa := s.mpa[rec.mpaID]
	mpa.ID = rec.mpaID
	film.Mpa = &mpa
	return &film
}
