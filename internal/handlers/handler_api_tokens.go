package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// apiTokenHandler handles HTTP requests for API token operations.
type apiTokenHandler struct {
	tokenSvc portssvc.APITokenSvc
}

func newAPITokenHandler(tokenSvc portssvc.APITokenSvc) *apiTokenHandler {
	return &apiTokenHandler{tokenSvc: tokenSvc}
}

func registerAPITokenRoutes(rg *gin.RouterGroup, tokenSvc portssvc.APITokenSvc) {
	h := newAPITokenHandler(tokenSvc)

	tokens := rg.Group("/api-tokens")
	{
		tokens.POST("", h.CreateToken)
		tokens.GET("", h.ListTokens)
		tokens.DELETE("/:id", h.RevokeToken)
		tokens.DELETE("", h.RevokeAllTokens)
	}
}

// CreateToken godoc
// @Summary Create a new API token
// @Description Creates a new API token for the authenticated user. The plaintext token is shown only once.
// @Tags tokens
// @Accept json
// @Produce json
// @Param request body dto.CreateAPITokenRequest true "Token creation details"
// @Success 201 {object} dto.CreateAPITokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api-tokens [post]
func (h *apiTokenHandler) CreateToken(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAPITokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	var expiresIn *time.Duration
	if req.ExpiresInDays != nil {
		d := time.Duration(*req.ExpiresInDays) * 24 * time.Hour
		expiresIn = &d
	}

	plaintext, token, err := h.tokenSvc.CreateToken(c.Request.Context(), userID, req.Name, expiresIn)
	if err != nil {
		respondError(c, err, "Failed to create token")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateAPITokenResponse{
		Token:    plaintext,
		APIToken: dto.ToAPITokenResponse(token),
	})
}

// ListTokens godoc
// @Summary List API tokens
// @Description Lists all API tokens for the authenticated user. Token values are never returned here.
// @Tags tokens
// @Produce json
// @Success 200 {array} dto.APITokenResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api-tokens [get]
func (h *apiTokenHandler) ListTokens(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tokens, err := h.tokenSvc.ListTokens(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list tokens")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAPITokenResponse(tokens))
}

// RevokeToken godoc
// @Summary Revoke an API token
// @Description Revokes one API token by ID. Only the owner can revoke a token.
// @Tags tokens
// @Produce json
// @Param id path string true "Token ID" format(uuid)
// @Success 204 "Token revoked"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api-tokens/{id} [delete]
func (h *apiTokenHandler) RevokeToken(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tokenID := c.Param("id")
	if _, err := uuid.Parse(tokenID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid token ID"})
		return
	}

	if err := h.tokenSvc.RevokeToken(c.Request.Context(), userID, tokenID); err != nil {
		respondError(c, err, "Failed to revoke token")
		return
	}
	c.Status(http.StatusNoContent)
}

// RevokeAllTokens godoc
// @Summary Revoke all API tokens
// @Description Revokes every API token belonging to the authenticated user.
// @Tags tokens
// @Produce json
// @Success 204 "All tokens revoked"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api-tokens [delete]
func (h *apiTokenHandler) RevokeAllTokens(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.tokenSvc.RevokeAllTokens(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Failed to revoke tokens")
		return
	}
	c.Status(http.StatusNoContent)
}
