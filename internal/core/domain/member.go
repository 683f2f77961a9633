package domain

import (
	"errors"
	"time"
)

// Role is the closed authorization tag attached to every member.
// Stored and transported as a plain string (ROLE_USER / ROLE_ADMIN).
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

var ErrMemberNotFound = errors.New("member not found")
var ErrUsernameTaken = errors.New("username already in use")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Member is the persistent identity record. Username is the immutable login
// key; PasswordHash is opaque and never serialized.
type Member struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the request-scoped view of an authenticated caller, rebuilt
// from validated token claims on every request.
type Identity struct {
	MemberID string
	Username string
	Role     Role
}

// IsAdmin reports whether the identity carries the administrator role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
