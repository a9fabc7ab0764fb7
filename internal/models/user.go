package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	// RoleGuest is the resolved role for an unauthenticated viewer. It is
	// never persisted; profile records only ever hold user or admin.
	RoleGuest UserRole = "guest"
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// UserProfile is created at first successful sign-in and keyed by the
// identity provider's subject id. Role is mutable (login resolution and
// admin promotion write it); every other field except UID and Email is
// student-editable.
type UserProfile struct {
	UID   string   `json:"uid" gorm:"primaryKey;size:255"`
	Name  string   `json:"name" gorm:"size:100"`
	Email string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Role  UserRole `json:"role" gorm:"not null;default:user;size:20"`

	// Profile info
	Phone      string  `json:"phone" gorm:"size:30"`
	Education  string  `json:"education" gorm:"size:200"`
	Profession string  `json:"profession" gorm:"size:200"`
	AvatarURL  *string `json:"avatar_url" gorm:"size:500"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// IsAdmin reports whether the profile grants admin capabilities.
func (u *UserProfile) IsAdmin() bool {
	return u.Role == RoleAdmin
}
