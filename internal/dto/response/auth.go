package response

import (
	"time"

	"account-service/internal/data/entity"
)

// UserResponse is the public projection of a user record. The password
// hash is not part of this struct and can never be serialized from it.
type UserResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     *string          `json:"phone,omitempty"`
	Role      entity.UserRole  `json:"role"`
	Addresses []entity.Address `json:"addresses"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserToResponse builds the public view of a user
func UserToResponse(user *entity.User) UserResponse {
	addresses := user.Addresses
	if addresses == nil {
		addresses = []entity.Address{}
	}

	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		Addresses: addresses,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
