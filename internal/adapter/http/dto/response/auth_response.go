package response

import (
	"time"

	"parceiros_internet/internal/domain/entities"
	"parceiros_internet/internal/usecase"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUser(u entities.UserAccount) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

type SessionResponse struct {
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
	IsAdmin bool         `json:"is_admin"`
}

func FromSession(s usecase.Session) SessionResponse {
	return SessionResponse{
		Token:   s.Token,
		User:    FromUser(s.User),
		IsAdmin: s.IsAdmin,
	}
}
