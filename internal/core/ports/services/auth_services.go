package services

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenGeneratorSvc defines operations for generating auth tokens
type TokenGeneratorSvc interface {
	// GenerateAccessToken creates a short-lived JWT for the user.
	GenerateAccessToken(ctx context.Context, userID string) (string, error)

	// GenerateRefreshToken creates a refresh token, stores its hash against the
	// user and returns the plaintext token.
	GenerateRefreshToken(ctx context.Context, userID string) (string, error)
}

// TokenValidatorSvc defines operations for validating auth tokens
type TokenValidatorSvc interface {
	// ValidateAndParseRefreshToken verifies the presented refresh token against
	// the stored hash and expiry, returning the owning user.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// TokenSvcFacade combines token generation and validation
type TokenSvcFacade interface {
	TokenGeneratorSvc
	TokenValidatorSvc
}

// GoogleOAuthHandlerSvcFacade defines the Google OAuth login flow operations
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates the anti-CSRF state parameter.
	GenerateStateString() (string, error)

	// GetGoogleLoginURL builds the consent page redirect URL.
	GetGoogleLoginURL(state string) string

	// ExchangeCodeForToken swaps the authorization code for tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo fetches the user's profile from the userinfo endpoint.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken verifies an ID token against the configured client ID.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}
