package adaptor

import (
	"net/http"

	"filmorate/internal/dto/request"
	"filmorate/internal/dto/response"
	"filmorate/internal/usecase"
	"filmorate/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.FindAll(r.Context())
	if err != nil {
		utils.ResponseError(w, h.log, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", response.UsersToResponse(users))
}

// GetUserByID handles GET /users/{id}
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.ResponseError(w, h.log, err, "get user by ID")
		return
	}

	user, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, h.log, err, "get user by ID")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", response.UserToResponse(user))
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseError(w, h.log, err, "create user")
		return
	}

	user, err := req.ToEntity()
	if err != nil {
		utils.ResponseError(w, h.log, err, "create user")
		return
	}

	created, err := h.service.Add(r.Context(), user)
	if err != nil {
		utils.ResponseError(w, h.log, err, "create user")
		return
	}

	utils.ResponseSuccess(w, "User created successfully", response.UserToResponse(created))
}

// UpdateUser handles PUT /users
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseError(w, h.log, err, "update user")
		return
	}

	user, err := req.ToEntity()
	if err != nil {
		utils.ResponseError(w, h.log, err, "update user")
		return
	}

	updated, err := h.service.Update(r.Context(), user)
	if err != nil {
		utils.ResponseError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", response.UserToResponse(updated))
}

// AddFriend handles PUT /users/{id}/friends/{friendId}
func (h *UserHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	userID, friendID, err := pathIDs(r, "id", "friendId")
	if err != nil {
		utils.ResponseError(w, h.log, err, "add friend")
		return
	}

	if err := h.service.AddFriend(r.Context(), userID, friendID); err != nil {
		utils.ResponseError(w, h.log, err, "add friend")
		return
	}

	utils.ResponseNoContent(w)
}

// RemoveFriend handles DELETE /users/{id}/friends/{friendId}
func (h *UserHandler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID, friendID, err := pathIDs(r, "id", "friendId")
	if err != nil {
		utils.ResponseError(w, h.log, err, "remove friend")
		return
	}

	if err := h.service.RemoveFriend(r.Context(), userID, friendID); err != nil {
		utils.ResponseError(w, h.log, err, "remove friend")
		return
	}

	utils.ResponseNoContent(w)
}

// GetFriends handles GET /users/{id}/friends
func (h *UserHandler) GetFriends(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.ResponseError(w, h.log, err, "get friends")
		return
	}

	friends, err := h.service.Friends(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, h.log, err, "get friends")
		return
	}

	utils.ResponseSuccess(w, "Friends retrieved successfully", response.UsersToResponse(friends))
}

// GetCommonFriends handles GET /users/{id}/friends/common/{otherId}
func (h *UserHandler) GetCommonFriends(w http.ResponseWriter, r *http.Request) {
	userID, otherID, err := pathIDs(r, "id", "otherId")
	if err != nil {
		utils.ResponseError(w, h.log, err, "get common friends")
		return
	}

	common, err := h.service.CommonFriends(r.Context(), userID, otherID)
	if err != nil {
		utils.ResponseError(w, h.log, err, "get common friends")
		return
	}

	utils.ResponseSuccess(w, "Common friends retrieved successfully", response.UsersToResponse(common))
}

// GetFriendRequests handles GET /users/{id}/friends/requests
func (h *UserHandler) GetFriendRequests(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.ResponseError(w, h.log, err, "get friend requests")
		return
	}

	requests, err := h.service.FriendRequests(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, h.log, err, "get friend requests")
		return
	}

	utils.ResponseSuccess(w, "Friend requests retrieved successfully", response.FriendRequestsResponse{
		Outgoing: response.UsersToResponse(requests.Outgoing),
		Incoming: response.UsersToResponse(requests.Incoming),
	})
}
