package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
	"github.com/salilgupta4/absoms-backend/internal/middleware"
	"github.com/salilgupta4/absoms-backend/internal/platform/config"
	"github.com/salilgupta4/absoms-backend/internal/utils"
)

const oauthStateCookie = "oauth_state"

// googleOAuthHandler drives the Google login flow. Users are matched on email
// as username; first-time logins get a MEMBER account with a random password.
type googleOAuthHandler struct {
	oauthService portssvc.GoogleOAuthHandlerSvcFacade
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	frontendURL  string
}

func newGoogleOAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *googleOAuthHandler {
	return &googleOAuthHandler{
		oauthService: services.GoogleOAuthHandler,
		userService:  services.User,
		tokenService: services.TokenService,
		frontendURL:  cfg.FrontendBaseURL,
	}
}

func registerGoogleOAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(cfg, services)
	google := rg.Group("/google")
	{
		google.GET("", h.RedirectToGoogle)
		google.GET("/callback", h.Callback)
		google.POST("/exchange-code", h.ExchangeCode)
	}
}

// ExchangeCodeRequest carries the authorization code returned by Google to
// the frontend redirect URI.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// RedirectToGoogle godoc
// @Summary Start Google OAuth login
// @Description Redirects the browser to the Google consent page.
// @Tags auth
// @Success 307 "Redirect to Google"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [get]
func (h *googleOAuthHandler) RedirectToGoogle(c *gin.Context) {
	state, err := h.oauthService.GenerateStateString()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start login"})
		return
	}
	// State round-trips through a short-lived cookie for CSRF validation.
	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.GetGoogleLoginURL(state))
}

// Callback godoc
// @Summary Google OAuth callback
// @Description Handles the redirect back from Google and forwards tokens to the frontend.
// @Tags auth
// @Success 307 "Redirect to frontend with token"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch on Google callback")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code missing"})
		return
	}

	oauthToken, err := h.oauthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Failed to exchange authorization code"})
		return
	}

	info, err := h.oauthService.GetUserInfo(ctx, oauthToken)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Failed to fetch user info"})
		return
	}
	if !info.VerifiedEmail {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google account email is not verified"})
		return
	}

	user, err := h.findOrCreateUser(c, info.Email, info.Name)
	if err != nil {
		return
	}

	accessToken, err := h.tokenService.GenerateAccessToken(ctx, user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/auth/callback?token="+accessToken)
}

// ExchangeCode godoc
// @Summary Exchange authorization code for tokens
// @Description SPA flow: the frontend posts the authorization code it received from Google and gets application tokens back.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) ExchangeCode(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	oauthToken, err := h.oauthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	idTokenString, ok := oauthToken.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "ID token missing from Google response"})
		return
	}

	payload, err := h.oauthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Email missing from Google token"})
		return
	}
	if !verified {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google account email is not verified"})
		return
	}

	user, err := h.findOrCreateUser(c, email, name)
	if err != nil {
		return
	}

	accessToken, err := h.tokenService.GenerateAccessToken(ctx, user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	refreshToken, err := h.tokenService.GenerateRefreshToken(ctx, user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	})
}

// findOrCreateUser resolves a Google identity to a local account. On any
// failure it writes the HTTP response itself and returns a non-nil error.
func (h *googleOAuthHandler) findOrCreateUser(c *gin.Context, email, name string) (*domain.User, error) {
	ctx := c.Request.Context()

	user, err := h.userService.GetUserByUsername(ctx, email)
	if err == nil {
		return user, nil
	}

	// Google has already verified the email, so the local password is never
	// used; a random one satisfies the credential requirement.
	password, randErr := utils.GenerateSecureRandomString(24)
	if randErr != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to provision user"})
		return nil, randErr
	}
	if name == "" {
		name = email
	}

	user, err = h.userService.CreateUser(ctx, dto.CreateUserRequest{
		Username: email,
		Password: password,
		Name:     name,
		Role:     string(domain.RoleMember),
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to create user from Google login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to provision user"})
		return nil, err
	}
	return user, nil
}
