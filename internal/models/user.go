package models

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleUser    UserRole = "user"
	RoleGuest   UserRole = "guest"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser, RoleGuest:
		return true
	}
	return false
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}
	return false
}

// User is the in-store representation and carries the password hash.
// It must never be serialized directly; use dto.UserResponse.
type User struct {
	ID             uint64     `gorm:"primarykey" json:"id"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username       string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	FullName       *string    `gorm:"type:varchar(100)" json:"full_name"`
	HashedPassword string     `gorm:"type:varchar(255);not null" json:"-"`
	Role           UserRole   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive       bool       `gorm:"not null;default:true;index:idx_user_active" json:"is_active"`
	IsSuperuser    bool       `gorm:"not null;default:false" json:"is_superuser"`
	IsVerified     bool       `gorm:"not null;default:false" json:"is_verified"`
	AvatarURL      *string    `gorm:"type:varchar(500)" json:"avatar_url"`
	Bio            *string    `gorm:"type:text" json:"bio"`
	Phone          *string    `gorm:"type:varchar(20)" json:"phone"`
	Theme          Theme      `gorm:"type:varchar(10);not null;default:'auto'" json:"theme"`
	Language       string     `gorm:"type:varchar(5);not null;default:'es'" json:"language"`
	Notifications  bool       `gorm:"column:notifications_enabled;not null;default:true" json:"notifications_enabled"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastLogin      *time.Time `json:"last_login"`
}
