package wire

import (
	"filmorate/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	r.Route("/genres", func(r chi.Router) {
		r.Get("/", genreHandler.GetGenres)
		r.Post("/", genreHandler.CreateGenre)
		r.Put("/", genreHandler.UpdateGenre)
		r.Get("/{id}", genreHandler.GetGenreByID)
		r.Delete("/{id}", genreHandler.DeleteGenre)
	})
}

func wireMpa(r chi.Router, mpaHandler *adaptor.MpaHandler) {
	r.Route("/mpa", func(r chi.Router) {
		r.Get("/", mpaHandler.GetRatings)
		r.Post("/", mpaHandler.CreateRating)
		r.Put("/", mpaHandler.UpdateRating)
		r.Get("/{id}", mpaHandler.GetRatingByID)
		r.Delete("/{id}", mpaHandler.DeleteRating)
	})
}
