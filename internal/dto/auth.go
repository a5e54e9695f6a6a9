package dto

import (
	"time"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
)

// LoginRequest represents the credentials presented at login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// RefreshTokenRequest carries the refresh token back for rotation.
type RefreshTokenRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// CreateAPITokenRequest defines the data needed to mint an API token.
type CreateAPITokenRequest struct {
	Name          string `json:"name" binding:"required"`
	ExpiresInDays *int   `json:"expiresInDays" binding:"omitempty,min=1"`
}

// APITokenResponse defines the data returned for an API token. The token
// value itself only appears in CreateAPITokenResponse.
type APITokenResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CreateAPITokenResponse carries the plaintext token, shown exactly once.
type CreateAPITokenResponse struct {
	Token    string           `json:"token"`
	APIToken APITokenResponse `json:"apiToken"`
}

// ToAPITokenResponse converts a domain.APIToken to APITokenResponse DTO
func ToAPITokenResponse(t *domain.APIToken) APITokenResponse {
	return APITokenResponse{
		ID:         t.ID,
		Name:       t.Name,
		LastUsedAt: t.LastUsedAt,
		ExpiresAt:  t.ExpiresAt,
		CreatedAt:  t.CreatedAt,
	}
}

// ToListAPITokenResponse converts a slice of domain.APIToken to DTOs
func ToListAPITokenResponse(tokens []domain.APIToken) []APITokenResponse {
	res := make([]APITokenResponse, len(tokens))
	for i, t := range tokens {
		res[i] = ToAPITokenResponse(&t)
	}
	return res
}
