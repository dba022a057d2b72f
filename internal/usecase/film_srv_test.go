package usecase

import (
	"context"
	"strings"
	"testing"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/memory"
	"filmorate/internal/data/repository"
	"filmorate/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFilmService_AddAndFind(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stored := mustAddFilm(t, svc, newFilm("nisi eiusmod", 2, 1, 2))
	assert.Equal(t, int64(1), stored.ID)
	assert.Equal(t, &entity.Mpa{ID: 1, Name: "G"}, stored.Mpa)
	assert.Equal(t, []entity.Genre{{ID: 1, Name: "Comedy"}, {ID: 2, Name: "Drama"}}, stored.Genres)

	found, err := svc.Film.FindByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, found)

	all, err := svc.Film.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, stored, all[0])
}

func TestFilmService_AddWithoutGenresReturnsEmptyList(t *testing.T) {
	svc := newTestService(t)

	stored := mustAddFilm(t, svc, newFilm("plain"))
	assert.NotNil(t, stored.Genres)
	assert.Empty(t, stored.Genres)
}

func TestFilmService_AddRejects(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	invalid := newFilm("")
	invalid.Description = strings.Repeat("a", 201)
	_, err := svc.Film.Add(ctx, invalid)
	requireKind(t, err, errs.KindValidation)
	assert.Len(t, errs.ViolationsOf(err), 2)

	unknownMpa := newFilm("film")
	unknownMpa.Mpa = &entity.Mpa{ID: 99}
	_, err = svc.Film.Add(ctx, unknownMpa)
	requireKind(t, err, errs.KindNotFound)

	_, err = svc.Film.Add(ctx, newFilm("film", 1, 42))
	requireKind(t, err, errs.KindNotFound)
	assert.Contains(t, err.Error(), "genre with id 42")

	all, err := svc.Film.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFilmService_AddDuplicateID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stored := mustAddFilm(t, svc, newFilm("first"))

	dup := newFilm("second")
	dup.ID = stored.ID
	_, err := svc.Film.Add(ctx, dup)
	requireKind(t, err, errs.KindDuplicate)
}

func TestFilmService_Update(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stored := mustAddFilm(t, svc, newFilm("film", 1, 2))

	changed := newFilm("Film Updated", 3)
	changed.ID = stored.ID
	changed.Mpa = &entity.Mpa{ID: 4}

	updated, err := svc.Film.Update(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, "Film Updated", updated.Name)
	assert.Equal(t, "R", updated.Mpa.Name)
	assert.Equal(t, []entity.Genre{{ID: 3, Name: "Cartoon"}}, updated.Genres)

	missing := newFilm("missing")
	missing.ID = 9999
	_, err = svc.Film.Update(ctx, missing)
	requireKind(t, err, errs.KindNotFound)

	invalid := newFilm("")
	invalid.ID = stored.ID
	_, err = svc.Film.Update(ctx, invalid)
	requireKind(t, err, errs.KindValidation)

	_, err = svc.Film.FindByID(ctx, 9999)
	requireKind(t, err, errs.KindNotFound)
}

func TestFilmService_Likes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	film := mustAddFilm(t, svc, newFilm("film"))
	user := mustAddUser(t, svc, newUser("dolore"))

	require.NoError(t, svc.Film.AddLike(ctx, film.ID, user.ID))
	require.NoError(t, svc.Film.AddLike(ctx, film.ID, user.ID))

	likes, err := svc.Film.Likes(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes.Count)
	assert.Equal(t, []int64{user.ID}, likes.UserIDs)

	other := mustAddUser(t, svc, newUser("other"))
	require.NoError(t, svc.Film.RemoveLike(ctx, film.ID, other.ID))

	likes, err = svc.Film.Likes(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes.Count)

	require.NoError(t, svc.Film.RemoveLike(ctx, film.ID, user.ID))
	likes, err = svc.Film.Likes(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes.Count)
	assert.Empty(t, likes.UserIDs)
}

func TestFilmService_LikeNotFoundPrecedence(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	err := svc.Film.AddLike(ctx, 9999, 9999)
	requireKind(t, err, errs.KindNotFound)
	assert.Contains(t, err.Error(), "user")

	user := mustAddUser(t, svc, newUser("dolore"))
	err = svc.Film.AddLike(ctx, 9999, user.ID)
	requireKind(t, err, errs.KindNotFound)
	assert.Contains(t, err.Error(), "film")

	err = svc.Film.RemoveLike(ctx, 9999, 9999)
	requireKind(t, err, errs.KindNotFound)
	assert.Contains(t, err.Error(), "user")
}

func TestFilmService_Popular(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a := mustAddFilm(t, svc, newFilm("A"))
	b := mustAddFilm(t, svc, newFilm("B"))
	c := mustAddFilm(t, svc, newFilm("C"))

	users := make([]*entity.User, 3)
	for i := range users {
		users[i] = mustAddUser(t, svc, newUser(string(rune('a'+i))+"user"))
	}

	require.NoError(t, svc.Film.AddLike(ctx, b.ID, users[0].ID))
	for _, u := range users {
		require.NoError(t, svc.Film.AddLike(ctx, c.ID, u.ID))
	}

	popular, err := svc.Film.Popular(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{c.ID, b.ID}, filmIDs(popular))

	popular, err = svc.Film.Popular(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{c.ID, b.ID, a.ID}, filmIDs(popular))
	assert.NotNil(t, popular[0].Genres)

	_, err = svc.Film.Popular(ctx, 0)
	requireKind(t, err, errs.KindValidation)
}

// deletingMpaRepository removes a rating right after it was looked up,
// the way a concurrent DELETE /mpa/{id} would.
type deletingMpaRepository struct {
	repository.MpaRepository
}

func (r deletingMpaRepository) FindByID(ctx context.Context, id int64) (*entity.Mpa, error) {
	mpa, err := r.MpaRepository.FindByID(ctx, id)
	if err != nil || mpa == nil {
		return mpa, err
	}
	if err := r.MpaRepository.Delete(ctx, id); err != nil {
		return nil, err
	}
	return mpa, nil
}

func TestFilmService_AddRatingDeletedConcurrently(t *testing.T) {
	repo := memory.NewRepository(zap.NewNop())
	repo.Mpa = deletingMpaRepository{MpaRepository: repo.Mpa}
	svc := NewFilmService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Add(ctx, newFilm("film"))
	requireKind(t, err, errs.KindNotFound)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
