package adaptor

import (
	"net/http"

	"filmorate/internal/dto/request"
	"filmorate/internal/dto/response"
	"filmorate/internal/usecase"
	"filmorate/pkg/utils"

	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /genres
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.FindAll(r.Context())
	if err != nil {
		utils.ResponseError(w, h.log, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved successfully", response.GenresToResponse(genres))
}

// GetGenreByID handles GET /genres/{id}
func (h *GenreHandler) GetGenreByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.ResponseError(w, h.log, err, "get genre by ID")
		return
	}

	genre, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, h.log, err, "get genre by ID")
		return
	}

	utils.ResponseSuccess(w, "Genre retrieved successfully", response.GenreToResponse(genre))
}

// CreateGenre handles POST /genres
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseError(w, h.log, err, "create genre")
		return
	}

	genre, err := h.service.Add(r.Context(), req.ToEntity())
	if err != nil {
		utils.ResponseError(w, h.log, err, "create genre")
		return
	}

	utils.ResponseSuccess(w, "Genre created successfully", response.GenreToResponse(genre))
}

// UpdateGenre handles PUT /genres
func (h *GenreHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseError(w, h.log, err, "update genre")
		return
	}

	genre, err := h.service.Update(r.Context(), req.ToEntity())
	if err != nil {
		utils.ResponseError(w, h.log, err, "update genre")
		return
	}

	utils.ResponseSuccess(w, "Genre updated successfully", response.GenreToResponse(genre))
}

// DeleteGenre handles DELETE /genres/{id}
func (h *GenreHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.ResponseError(w, h.log, err, "delete genre")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		utils.ResponseError(w, h.log, err, "delete genre")
		return
	}

	utils.ResponseSuccess(w, "Genre deleted successfully", nil)
}

type MpaHandler struct {
	service usecase.MpaService
	log     *zap.Logger
}

func NewMpaHandler(service usecase.MpaService, log *zap.Logger) *MpaHandler {
	return &MpaHandler{
		service: service,
		log:     log.With(zap.String("handler", "mpa")),
	}
}

// GetRatings handles GET /mpa
func (h *MpaHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.service.FindAll(r.Context())
	if err != nil {
		utils.ResponseError(w, h.log, err, "get ratings")
		return
	}

	utils.ResponseSuccess(w, "Ratings retrieved successfully", response.MpaListToResponse(ratings))
}

// GetRatingByID handles GET /mpa/{id}
func (h *MpaHandler) GetRatingByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.ResponseError(w, h.log, err, "get rating by ID")
		return
	}

	mpa, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, h.log, err, "get rating by ID")
		return
	}

	utils.ResponseSuccess(w, "Rating retrieved successfully", response.MpaToResponse(mpa))
}

// CreateRating handles POST /mpa
func (h *MpaHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	var req request.MpaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseError(w, h.log, err, "create rating")
		return
	}

	mpa, err := h.service.Add(r.Context(), req.ToEntity())
	if err != nil {
		utils.ResponseError(w, h.log, err, "create rating")
		return
	}

	utils.ResponseSuccess(w, "Rating created successfully", response.MpaToResponse(mpa))
}

// UpdateRating handles PUT /mpa
func (h *MpaHandler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	var req request.MpaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseError(w, h.log, err, "update rating")
		return
	}

	mpa, err := h.service.Update(r.Context(), req.ToEntity())
	if err != nil {
		utils.ResponseError(w, h.log, err, "update rating")
		return
	}

	utils.ResponseSuccess(w, "Rating updated successfully", response.MpaToResponse(mpa))
}

// DeleteRating handles DELETE /mpa/{id}, refused while films use the rating
func (h *MpaHandler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.ResponseError(w, h.log, err, "delete rating")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		utils.ResponseError(w, h.log, err, "delete rating")
		return
	}

	utils.ResponseSuccess(w, "Rating deleted successfully", nil)
}
