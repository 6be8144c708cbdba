package entity

import "time"

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleAssistant UserRole = "assistant"
)

// ValidRole reports whether r belongs to the closed role set.
func ValidRole(r UserRole) bool {
	return r == RoleAdmin || r == RoleAssistant
}

// User is a credential record. Username is the unique identifier and is
// immutable once created.
type User struct {
	Username     string     `db:"username"`
	PasswordHash string     `db:"password"`
	Role         UserRole   `db:"role"`
	Activated    bool       `db:"activated"`
	CreatedAt    time.Time  `db:"created_at"`
	LastLogin    *time.Time `db:"last_login"`
}
