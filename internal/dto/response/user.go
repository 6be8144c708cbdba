package response

import (
	"time"

	"legal-assistant/internal/data/entity"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	Username  string          `json:"username"`
	Role      entity.UserRole `json:"role"`
	Activated bool            `json:"activated"`
	CreatedAt time.Time       `json:"created_at"`
	LastLogin *time.Time      `json:"last_login,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		Username:  user.Username,
		Role:      user.Role,
		Activated: user.Activated,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	result := make([]UserResponse, len(users))
	for i, user := range users {
		result[i] = UserToResponse(user)
	}
	return result
}
