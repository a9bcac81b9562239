package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// ValidRole reports whether role is one of the recognised back-office roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}

// User models a back-office account. PasswordHash is write-only: it never
// appears in JSON responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
