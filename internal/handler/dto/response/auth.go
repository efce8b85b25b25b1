package response

import (
	"github.com/google/uuid"

	"hotel-loyalty-core/internal/usecase/queries"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromAuthorizedUserView(rm *queries.AuthorizedUserView) UserResponse {
	return UserResponse{
		ID:       rm.ID,
		Email:    rm.Email,
		Role:     rm.Role,
		IsActive: rm.IsActive,
	}
}
