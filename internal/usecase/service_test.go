package usecase

import (
	"context"
	"testing"
	"time"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/memory"
	"filmorate/pkg/errs"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(memory.NewRepository(zap.NewNop()), zap.NewNop())
}

func newFilm(name string, genres ...int64) *entity.Film {
	f := &entity.Film{
		Name:        name,
		Description: "adipisicing",
		ReleaseDate: time.Date(1967, 3, 25, 0, 0, 0, 0, time.UTC),
		Duration:    100,
		Mpa:         &entity.Mpa{ID: 1},
	}
	for _, g := range genres {
		f.Genres = append(f.Genres, entity.Genre{ID: g})
	}
	return f
}

func newUser(login string) *entity.User {
	return &entity.User{
		Email:    login + "@mail.ru",
		Login:    login,
		Name:     "Nick " + login,
		Birthday: time.Date(1946, 8, 20, 0, 0, 0, 0, time.UTC),
	}
}

func mustAddFilm(t *testing.T, svc *Service, f *entity.Film) *entity.Film {
	t.Helper()
	stored, err := svc.Film.Add(context.Background(), f)
	require.NoError(t, err)
	return stored
}

func mustAddUser(t *testing.T, svc *Service, u *entity.User) *entity.User {
	t.Helper()
	stored, err := svc.User.Add(context.Background(), u)
	require.NoError(t, err)
	return stored
}

func requireKind(t *testing.T, err error, kind errs.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, errs.KindOf(err), err.Error())
}

func userIDs(users []*entity.User) []int64 {
	out := make([]int64, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func filmIDs(films []*entity.Film) []int64 {
	out := make([]int64, 0, len(films))
	for _, f := range films {
		out = append(out, f.ID)
	}
	return out
}
