package domain

import "time"

// Role is the closed set of account roles. Anything outside the three
// constants below is rejected at the boundary via ParseRole.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// ParseRole maps a raw string onto the closed Role enumeration.
// Unknown values return ErrInvalidRole rather than being passed through.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleModerator, RoleUser:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// User models an account holder.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the subset of account data embedded in tokens.
type Identity struct {
	Username string
	Role     Role
}
