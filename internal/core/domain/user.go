package domain

import (
	"database/sql"
	"time"
)

// UserRole gates mutating payroll/settings/admin routes.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleMember   UserRole = "MEMBER"
	RoleReadOnly UserRole = "READONLY"
)

// User represents an application user.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete

	// Refresh token state, stored hashed.
	RefreshTokenHash       sql.NullString `json:"-"`
	RefreshTokenExpiryTime sql.NullTime   `json:"-"`
}

// CanWrite reports whether the role may perform mutating operations.
func (r UserRole) CanWrite() bool {
	return r == RoleAdmin || r == RoleMember
}

// APIToken represents a long-lived token for automation clients
// (e.g. scheduled CSV export pulls).
type APIToken struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Name       string     `json:"name"`
	TokenHash  string     `json:"-"` // Never expose the hash in JSON responses
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"-"` // For soft deletes
}

// IsExpired checks if the token has expired
func (t *APIToken) IsExpired() bool {
	if t.ExpiresAt == nil {
		return false
	}
	return t.ExpiresAt.Before(time.Now())
}

// UpdateLastUsed updates the LastUsedAt timestamp to the current time
func (t *APIToken) UpdateLastUsed() {
	now := time.Now()
	t.LastUsedAt = &now
}
