package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Role is the sole authorization signal.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User statuses.
const (
	UserActive    = "active"
	UserSuspended = "suspended"
)

// User is an account that can log in. Admins manage the back office;
// regular users place orders.
type User struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Email     string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;not null;default:user" json:"role"`
	Status    string         `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
