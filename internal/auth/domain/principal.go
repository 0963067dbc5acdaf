// Package domain defines the core authentication and authorization types:
// roles, principals, token claims and the route access policy.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Role is the authorization role attached to a user account.
type Role string

// Supported roles.
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole maps a free-form role string to a Role. Anything other than
// "admin" (case-insensitive) becomes RoleUser, mirroring the registration
// contract where USER is the default.
func ParseRole(value string) Role {
	if strings.EqualFold(value, string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Principal is the resolved identity used for authorization checks.
// It is constructed fresh for each request from a verified token plus a
// directory lookup, lives only in that request's context and is never
// cached or shared across requests.
type Principal struct {
	ID    uuid.UUID
	Email string
	Role  Role
}

// IsAdmin reports whether the principal carries the administrative role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
