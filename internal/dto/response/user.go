package response

import (
	"filmorate/internal/data/entity"
	"filmorate/pkg/utils"
)

type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
}

type FriendRequestsResponse struct {
	Outgoing []UserResponse `json:"outgoing"`
	Incoming []UserResponse `json:"incoming"`
}

// UserToResponse exposes the display name, so a blank name shows the login.
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Login:    user.Login,
		Name:     user.DisplayName(),
		Birthday: user.Birthday.Format(utils.DateLayout),
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserToResponse(u))
	}
	return out
}
