package dto

import (
	"time"

	"github.com/spec-kit/trip-board/internal/domain"
	apperrors "github.com/spec-kit/trip-board/pkg/util"
)

// RegisterRequest payload for new users.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// Validate rejects the request before it reaches business logic. Details
// carry field names only.
func (r RegisterRequest) Validate() error {
	missing := map[string]any{}
	if r.Name == "" {
		missing["name"] = "required"
	}
	if r.Email == "" {
		missing["email"] = "required"
	}
	if r.Password == "" {
		missing["password"] = "required"
	}
	if r.Phone == "" {
		missing["phone"] = "required"
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("name, email, password, and phone are required", missing)
	}
	return nil
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate rejects incomplete credentials.
func (r LoginRequest) Validate() error {
	missing := map[string]any{}
	if r.Email == "" {
		missing["email"] = "required"
	}
	if r.Password == "" {
		missing["password"] = "required"
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("email and password are required", missing)
	}
	return nil
}

// UserResponse is the public user projection. It never carries the hash.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// LoginResponse bundles the bearer token with the public user.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// NewUserResponse projects a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}
