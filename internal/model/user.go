package model

import "time"

// Role is the access level of a user account.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleInstaller Role = "installer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleInstaller, RoleAdmin:
		return true
	}
	return false
}

// User represents a login account.
type User struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Username         string     `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email            string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash     string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName        string     `json:"firstName,omitempty" gorm:"size:255"`
	LastName         string     `json:"lastName,omitempty" gorm:"size:255"`
	Role             Role       `json:"role" gorm:"type:varchar(20);not null;default:'customer';index"`
	ResetToken       *string    `json:"-" gorm:"size:128;index"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// UserSummary is the public view of a user returned by the session endpoints.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Summary returns the public view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
