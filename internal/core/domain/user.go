package domain

import "time"

const (
	RoleStandard = "standard"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role is one of the enumerated account roles.
func ValidRole(role string) bool {
	return role == RoleStandard || role == RoleAdmin
}

// User models a platform account. PasswordHash never serializes; list and
// read paths additionally exclude it at the query projection level.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
