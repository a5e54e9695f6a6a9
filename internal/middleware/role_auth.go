package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
)

// RequireWriteAccess blocks mutating requests from READONLY users. Reads pass
// through untouched; writes look up the authenticated user's role and reject
// with 403 when the role cannot write.
func RequireWriteAccess(users portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context())
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("User ID missing from context in write access check")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Failed to load user for write access check", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if !user.Role.CanWrite() {
			logger.Warn("Write rejected for read-only user", "role", user.Role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Your role does not permit this operation"})
			return
		}

		c.Next()
	}
}
