package models

import "github.com/golang-jwt/jwt/v5"

// Roles a bearer token can carry.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserClaims is the JWT payload issued at login. User tokens gate the
// card-listing, card-deletion and payment operations; admin tokens gate
// the company management surface.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"user_id"`
	Phone  string `json:"phone,omitempty"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the claims belong to an operator identity.
func (c *UserClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
