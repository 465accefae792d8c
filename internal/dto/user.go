package dto

import (
	"time"

	"github.com/viltrumflow/taskflow-api/internal/models"
)

// UserCreateRequest is the registration payload.
type UserCreateRequest struct {
	Email    string  `json:"email" binding:"required,email,max=255"`
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Password string  `json:"password" binding:"required,password"`
	FullName *string `json:"full_name" binding:"omitempty,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,max=20"`
	Bio      *string `json:"bio"`
}

// UserUpdateRequest is a partial update; only sent fields change.
type UserUpdateRequest struct {
	Email     Optional[string] `json:"email"`
	Username  Optional[string] `json:"username"`
	FullName  Optional[string] `json:"full_name"`
	Phone     Optional[string] `json:"phone"`
	Bio       Optional[string] `json:"bio"`
	AvatarURL Optional[string] `json:"avatar_url"`
}

// Validate checks the sent fields. Email and username may not be null.
func (r UserUpdateRequest) Validate() error {
	var c checker
	if c.notNull("email", r.Email.Set, r.Email.Null) && r.Email.Present() {
		c.check("email", r.Email.Value, "email,max=255")
	}
	if c.notNull("username", r.Username.Set, r.Username.Null) && r.Username.Present() {
		c.check("username", r.Username.Value, "min=3,max=50")
	}
	if r.FullName.Present() {
		c.check("full_name", r.FullName.Value, "max=100")
	}
	if r.Phone.Present() {
		c.check("phone", r.Phone.Value, "max=20")
	}
	if r.AvatarURL.Present() {
		c.check("avatar_url", r.AvatarURL.Value, "max=500")
	}
	return c.err()
}

// Changes maps the sent fields to column values.
func (r UserUpdateRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Email.Set {
		changes["email"] = r.Email.Value
	}
	if r.Username.Set {
		changes["username"] = r.Username.Value
	}
	if r.FullName.Set {
		changes["full_name"] = nullable(r.FullName)
	}
	if r.Phone.Set {
		changes["phone"] = nullable(r.Phone)
	}
	if r.Bio.Set {
		changes["bio"] = nullable(r.Bio)
	}
	if r.AvatarURL.Set {
		changes["avatar_url"] = nullable(r.AvatarURL)
	}
	return changes
}

// PasswordChangeRequest sets a new password. CurrentPassword is required when changing your own.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"required,password"`
}

// UserResponse is the public view of a user. It never carries the password hash.
type UserResponse struct {
	ID         uint64          `json:"id"`
	Email      string          `json:"email"`
	Username   string          `json:"username"`
	FullName   *string         `json:"full_name"`
	Phone      *string         `json:"phone"`
	Bio        *string         `json:"bio"`
	Role       models.UserRole `json:"role"`
	IsActive   bool            `json:"is_active"`
	IsVerified bool            `json:"is_verified"`
	AvatarURL  *string         `json:"avatar_url"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	LastLogin  *time.Time      `json:"last_login"`
}

// ToUserResponse converts a User.
func ToUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Username:   user.Username,
		FullName:   user.FullName,
		Phone:      user.Phone,
		Bio:        user.Bio,
		Role:       user.Role,
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
		AvatarURL:  user.AvatarURL,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
		LastLogin:  user.LastLogin,
	}
}

// ToUserResponses converts a list of users.
func ToUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}

// LoginRequest accepts JSON or form-encoded credentials.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
