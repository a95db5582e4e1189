package domain

import "time"

// Role is the coarse permission class assigned to a user.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is an identity record. PasswordHash and AccessToken are storage-only
// fields and must never reach an API response; AccessToken is bookkeeping for
// the last issued session token and is never consulted during verification.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	AccessToken  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Name  *string
	Email *string
	Role  *Role
}
