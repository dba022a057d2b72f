package request

import "filmorate/internal/data/entity"

type UserRequest struct {
	ID       int64  `json:"id,omitempty"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
}

func (r *UserRequest) ToEntity() (*entity.User, error) {
	birthday, err := parseDate("birthday", r.Birthday)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:       r.ID,
		Email:    r.Email,
		Login:    r.Login,
		Name:     r.Name,
		Birthday: birthday,
	}, nil
}
