package dto

import (
	"time"

	"github.com/hamza-bely/4hybd/internal/domain"
)

// UserResponse is the outward profile shape.
type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// UserUpdateRequest carries optional profile changes.
type UserUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// NewUserResponse maps a domain user, dropping the password hash.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
