// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role controls what a user is allowed to do. Catalog writes are
// restricted to RoleAdmin.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a registered account.
type User struct {
	// ID is a UUID string, assigned on insert.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Email is used for login. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Username is the public handle. It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null" json:"username"`

	// Password is the bcrypt hash of the user's password. It is never
	// serialized and never stores the plaintext value.
	Password string `gorm:"size:255;not null" json:"-"`

	// Role is the access level, RoleUser unless stated otherwise.
	Role Role `gorm:"size:16;default:USER" json:"role"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the UUID surrogate and the default role before the
// row is written.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}
