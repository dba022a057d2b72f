package adaptor

import (
	"net/http"

	"filmorate/internal/dto/request"
	"filmorate/internal/dto/response"
	"filmorate/internal/usecase"
	"filmorate/pkg/utils"

	"go.uber.org/zap"
)

const defaultPopularCount = 10

type FilmHandler struct {
	service usecase.FilmService
	log     *zap.Logger
}

func NewFilmHandler(service usecase.FilmService, log *zap.Logger) *FilmHandler {
	return &FilmHandler{
		service: service,
		log:     log.With(zap.String("handler", "film")),
	}
}

// GetFilms handles GET /films
func (h *FilmHandler) GetFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.service.FindAll(r.Context())
	if err != nil {
		utils.ResponseError(w, h.log, err, "get films")
		return
	}

	utils.ResponseSuccess(w, "Films retrieved successfully", response.FilmsToResponse(films))
}

// GetFilmByID handles GET /films/{id}
func (h *FilmHandler) GetFilmByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.ResponseError(w, h.log, err, "get film by ID")
		return
	}

	film, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, h.log, err, "get film by ID")
		return
	}

	utils.ResponseSuccess(w, "Film retrieved successfully", response.FilmToResponse(film))
}

// CreateFilm handles POST /films
func (h *FilmHandler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseError(w, h.log, err, "create film")
		return
	}

	film, err := req.ToEntity()
	if err != nil {
		utils.ResponseError(w, h.log, err, "create film")
		return
	}

	created, err := h.service.Add(r.Context(), film)
	if err != nil {
		utils.ResponseError(w, h.log, err, "create film")
		return
	}

	utils.ResponseSuccess(w, "Film created successfully", response.FilmToResponse(created))
}

// UpdateFilm handles PUT /films, the id comes from the body
func (h *FilmHandler) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseError(w, h.log, err, "update film")
		return
	}

	film, err := req.ToEntity()
	if err != nil {
		utils.ResponseError(w, h.log, err, "update film")
		return
	}

	updated, err := h.service.Update(r.Context(), film)
	if err != nil {
		utils.ResponseError(w, h.log, err, "update film")
		return
	}

	utils.ResponseSuccess(w, "Film updated successfully", response.FilmToResponse(updated))
}

// AddLike handles PUT /films/{id}/like/{userId}
func (h *FilmHandler) AddLike(w http.ResponseWriter, r *http.Request) {
	filmID, userID, err := pathIDs(r, "id", "userId")
	if err != nil {
		utils.ResponseError(w, h.log, err, "add like")
		return
	}

	if err := h.service.AddLike(r.Context(), filmID, userID); err != nil {
		utils.ResponseError(w, h.log, err, "add like")
		return
	}

	utils.ResponseNoContent(w)
}

// RemoveLike handles DELETE /films/{id}/like/{userId}
func (h *FilmHandler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	filmID, userID, err := pathIDs(r, "id", "userId")
	if err != nil {
		utils.ResponseError(w, h.log, err, "remove like")
		return
	}

	if err := h.service.RemoveLike(r.Context(), filmID, userID); err != nil {
		utils.ResponseError(w, h.log, err, "remove like")
		return
	}

	utils.ResponseNoContent(w)
}

// GetLikes handles GET /films/{id}/likes
func (h *FilmHandler) GetLikes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.ResponseError(w, h.log, err, "get likes")
		return
	}

	likes, err := h.service.Likes(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, h.log, err, "get likes")
		return
	}

	utils.ResponseSuccess(w, "Likes retrieved successfully", response.LikesResponse{
		FilmID:  likes.FilmID,
		Count:   likes.Count,
		UserIDs: likes.UserIDs,
	})
}

// GetPopular handles GET /films/popular?count=N (default 10)
func (h *FilmHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	count, err := utils.ParsePositive("count", r.URL.Query().Get("count"), defaultPopularCount)
	if err != nil {
		utils.ResponseError(w, h.log, err, "get popular films")
		return
	}

	films, err := h.service.Popular(r.Context(), count)
	if err != nil {
		utils.ResponseError(w, h.log, err, "get popular films")
		return
	}

	utils.ResponseSuccess(w, "Popular films retrieved successfully", response.FilmsToResponse(films))
}
