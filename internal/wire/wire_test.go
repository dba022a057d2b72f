package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"filmorate/internal/data/memory"
	"filmorate/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newTestRouter(t *testing.T, mutate ...func(*utils.Config)) http.Handler {
	t.Helper()

	config := &utils.Config{
		App:     utils.AppConfig{Name: "filmorate", Port: "8080"},
		Storage: utils.StorageConfig{Driver: utils.StorageMemory},
		Metrics: utils.MetricsConfig{Enabled: true},
	}
	for _, m := range mutate {
		m(config)
	}

	log := zap.NewNop()
	return Wiring(memory.NewRepository(log), config, log).Router
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

const filmBody = `{
	"name": "nisi eiusmod",
	"description": "adipisicing",
	"releaseDate": "1967-03-25",
	"duration": 100,
	"mpa": {"id": 1},
	"genres": [{"id": 2}, {"id": 1}]
}`

func userBody(login string) string {
	return `{"email":"` + login + `@mail.ru","login":"` + login + `","name":"","birthday":"1946-08-20"}`
}

func TestRouter_FilmLifecycle(t *testing.T) {
	h := newTestRouter(t)

	rec, env := do(t, h, http.MethodPost, "/films", filmBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, env.Status)
	assert.JSONEq(t, `{
		"id": 1,
		"name": "nisi eiusmod",
		"description": "adipisicing",
		"releaseDate": "1967-03-25",
		"duration": 100,
		"mpa": {"id": 1, "name": "G"},
		"genres": [{"id": 1, "name": "Comedy"}, {"id": 2, "name": "Drama"}]
	}`, string(env.Data))

	rec, env = do(t, h, http.MethodPut, "/films",
		`{"id":1,"name":"Film Updated","description":"New film update decription","releaseDate":"1989-04-17","duration":190,"mpa":{"id":5}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{
		"id": 1,
		"name": "Film Updated",
		"description": "New film update decription",
		"releaseDate": "1989-04-17",
		"duration": 190,
		"mpa": {"id": 5, "name": "NC-17"},
		"genres": []
	}`, string(env.Data))

	rec, _ = do(t, h, http.MethodGet, "/films/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/films", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var films []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &films))
	assert.Len(t, films, 1)
}

func TestRouter_FilmErrors(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
	}{
		{name: "unknown film", method: http.MethodGet, path: "/films/9999", code: http.StatusNotFound},
		{name: "non-numeric id", method: http.MethodGet, path: "/films/abc", code: http.StatusBadRequest},
		{name: "malformed body", method: http.MethodPost, path: "/films", body: `{"name":`, code: http.StatusBadRequest},
		{
			name:   "blank name",
			method: http.MethodPost,
			path:   "/films",
			body:   `{"name":"","description":"d","releaseDate":"1900-03-25","duration":200,"mpa":{"id":1}}`,
			code:   http.StatusBadRequest,
		},
		{
			name:   "too early",
			method: http.MethodPost,
			path:   "/films",
			body:   `{"name":"n","description":"d","releaseDate":"1890-03-25","duration":200,"mpa":{"id":1}}`,
			code:   http.StatusBadRequest,
		},
		{
			name:   "bad date format",
			method: http.MethodPost,
			path:   "/films",
			body:   `{"name":"n","description":"d","releaseDate":"25.03.1990","duration":200,"mpa":{"id":1}}`,
			code:   http.StatusBadRequest,
		},
		{
			name:   "unknown mpa",
			method: http.MethodPost,
			path:   "/films",
			body:   `{"name":"n","description":"d","releaseDate":"1990-03-25","duration":200,"mpa":{"id":99}}`,
			code:   http.StatusNotFound,
		},
		{
			name:   "update unknown",
			method: http.MethodPut,
			path:   "/films",
			body:   `{"id":9999,"name":"n","description":"d","releaseDate":"1990-03-25","duration":200,"mpa":{"id":1}}`,
			code:   http.StatusNotFound,
		},
		{name: "popular zero", method: http.MethodGet, path: "/films/popular?count=0", code: http.StatusBadRequest},
		{name: "like unknown", method: http.MethodPut, path: "/films/1/like/1", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
			assert.False(t, env.Status)
		})
	}
}

func TestRouter_ValidationEnvelope(t *testing.T) {
	h := newTestRouter(t)

	rec, env := do(t, h, http.MethodPost, "/users", `{"email":"mail.ru","login":"dolore ullamco","birthday":"1946-08-20"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", env.Message)
	assert.JSONEq(t, `[
		{"field": "email", "message": "Invalid email format"},
		{"field": "login", "message": "Must not contain whitespace"}
	]`, string(env.Errors))
}

func TestRouter_LikesAndPopular(t *testing.T) {
	h := newTestRouter(t)

	for i := 0; i < 3; i++ {
		rec, _ := do(t, h, http.MethodPost, "/films", filmBody)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	for _, login := range []string{"a", "b", "c"} {
		rec, _ := do(t, h, http.MethodPost, "/users", userBody(login))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	for _, path := range []string{"/films/2/like/1", "/films/3/like/1", "/films/3/like/2", "/films/3/like/3", "/films/3/like/3"} {
		rec, _ := do(t, h, http.MethodPut, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Empty(t, rec.Body.String())
	}

	rec, env := do(t, h, http.MethodGet, "/films/popular?count=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var popular []struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &popular))
	require.Len(t, popular, 2)
	assert.Equal(t, int64(3), popular[0].ID)
	assert.Equal(t, int64(2), popular[1].ID)

	rec, env = do(t, h, http.MethodGet, "/films/3/likes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"filmId": 3, "count": 3, "userIds": [1, 2, 3]}`, string(env.Data))

	rec, _ = do(t, h, http.MethodDelete, "/films/3/like/2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, env = do(t, h, http.MethodGet, "/films/3/likes", "")
	assert.JSONEq(t, `{"filmId": 3, "count": 2, "userIds": [1, 3]}`, string(env.Data))
}

func TestRouter_Friends(t *testing.T) {
	h := newTestRouter(t)

	for _, login := range []string{"one", "two", "three"} {
		rec, _ := do(t, h, http.MethodPost, "/users", userBody(login))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	_, env := do(t, h, http.MethodGet, "/users/1", "")
	assert.JSONEq(t, `{"id":1,"email":"one@mail.ru","login":"one","name":"one","birthday":"1946-08-20"}`, string(env.Data))

	rec, _ := do(t, h, http.MethodPut, "/users/1/friends/2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, env = do(t, h, http.MethodGet, "/users/1/friends", "")
	assert.JSONEq(t, `[]`, string(env.Data))

	_, env = do(t, h, http.MethodGet, "/users/2/friends/requests", "")
	var requests struct {
		Outgoing []struct{ ID int64 } `json:"outgoing"`
		Incoming []struct{ ID int64 } `json:"incoming"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &requests))
	assert.Empty(t, requests.Outgoing)
	require.Len(t, requests.Incoming, 1)
	assert.Equal(t, int64(1), requests.Incoming[0].ID)

	for _, path := range []string{"/users/2/friends/1", "/users/1/friends/3", "/users/3/friends/1", "/users/2/friends/3", "/users/3/friends/2"} {
		rec, _ := do(t, h, http.MethodPut, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	_, env = do(t, h, http.MethodGet, "/users/1/friends/common/2", "")
	var common []struct{ ID int64 }
	require.NoError(t, json.Unmarshal(env.Data, &common))
	require.Len(t, common, 1)
	assert.Equal(t, int64(3), common[0].ID)

	rec, _ = do(t, h, http.MethodPut, "/users/1/friends/1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, h, http.MethodPut, "/users/1/friends/9999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodDelete, "/users/1/friends/2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, env = do(t, h, http.MethodGet, "/users/2/friends", "")
	var friends []struct{ ID int64 }
	require.NoError(t, json.Unmarshal(env.Data, &friends))
	require.Len(t, friends, 1)
	assert.Equal(t, int64(3), friends[0].ID)
}

func TestRouter_ReferenceData(t *testing.T) {
	h := newTestRouter(t)

	rec, env := do(t, h, http.MethodGet, "/genres", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var genres []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &genres))
	assert.Len(t, genres, 6)

	_, env = do(t, h, http.MethodGet, "/mpa/3", "")
	assert.JSONEq(t, `{"id":3,"name":"PG-13"}`, string(env.Data))

	rec, _ = do(t, h, http.MethodGet, "/genres/9999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/films", filmBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodDelete, "/mpa/1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = do(t, h, http.MethodDelete, "/genres/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	_, env = do(t, h, http.MethodGet, "/films/1", "")
	var film struct {
		Genres []map[string]any `json:"genres"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &film))
	assert.Len(t, film.Genres, 1)

	rec, _ = do(t, h, http.MethodPost, "/genres", `{"id":1,"name":"Again"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, env = do(t, h, http.MethodPost, "/mpa", `{"name":"TV-MA"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":6,"name":"TV-MA"}`, string(env.Data))
}

func TestRouter_Infrastructure(t *testing.T) {
	h := newTestRouter(t)

	rec, _ := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	do(t, h, http.MethodGet, "/films", "")

	rec, _ = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "filmorate_http_requests_total")

	rec, _ = do(t, h, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RateLimited(t *testing.T) {
	h := newTestRouter(t, func(c *utils.Config) {
		c.RateLimit = utils.RateLimitConfig{RPS: 1, Burst: 1}
		c.Metrics.Enabled = false
	})

	rec, _ := do(t, h, http.MethodGet, "/films", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/films", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_CreatesAnswerOK(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		path string
		body string
	}{
		{path: "/users", body: userBody("dolore")},
		{path: "/films", body: filmBody},
		{path: "/genres", body: `{"name":"Horror"}`},
		{path: "/mpa", body: `{"name":"TV-MA"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, env := do(t, h, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.True(t, env.Status)
			assert.NotEqual(t, "null", string(env.Data))
		})
	}
}
