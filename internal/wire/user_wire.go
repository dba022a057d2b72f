package wire

import (
	"filmorate/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.GetUsers)
		r.Post("/", userHandler.CreateUser)
		r.Put("/", userHandler.UpdateUser)

		r.Get("/{id}", userHandler.GetUserByID)

		r.Route("/{id}/friends", func(r chi.Router) {
			r.Get("/", userHandler.GetFriends)
			r.Get("/requests", userHandler.GetFriendRequests)
			r.Get("/common/{otherId}", userHandler.GetCommonFriends)
			r.Put("/{friendId}", userHandler.AddFriend)
			r.Delete("/{friendId}", userHandler.RemoveFriend)
		})
	})
}
