package request

import (
	"testing"
	"time"

	"filmorate/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilmRequest_ToEntity(t *testing.T) {
	req := FilmRequest{
		Name:        "nisi eiusmod",
		Description: "adipisicing",
		ReleaseDate: "1967-03-25",
		Duration:    100,
		Mpa:         &RefRequest{ID: 1, Name: "ignored"},
		Genres:      []RefRequest{{ID: 2}, {ID: 1}},
	}

	film, err := req.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, time.Date(1967, 3, 25, 0, 0, 0, 0, time.UTC), film.ReleaseDate)
	assert.Equal(t, int64(1), film.Mpa.ID)
	assert.Empty(t, film.Mpa.Name)
	assert.Equal(t, []int64{1, 2}, film.GenreIDs())
}

func TestFilmRequest_BadDate(t *testing.T) {
	req := FilmRequest{Name: "x", ReleaseDate: "25.03.1967"}

	_, err := req.ToEntity()
	require.True(t, errs.Is(err, errs.KindValidation))
	assert.Equal(t, "releaseDate", errs.ViolationsOf(err)[0].Field)
}

func TestFilmRequest_MissingMpaAndDate(t *testing.T) {
	film, err := (&FilmRequest{Name: "x"}).ToEntity()
	require.NoError(t, err)
	assert.Nil(t, film.Mpa)
	assert.True(t, film.ReleaseDate.IsZero())
}

func TestUserRequest_ToEntity(t *testing.T) {
	user, err := (&UserRequest{Email: "mail@mail.ru", Login: "dolore", Birthday: "1946-08-20"}).ToEntity()
	require.NoError(t, err)
	assert.Equal(t, 1946, user.Birthday.Year())

	_, err = (&UserRequest{Birthday: "not a date"}).ToEntity()
	require.True(t, errs.Is(err, errs.KindValidation))
	assert.Equal(t, "birthday", errs.ViolationsOf(err)[0].Field)
}
