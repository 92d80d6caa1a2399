package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kokolodziejska/zagrane/internal/domain"
	"github.com/kokolodziejska/zagrane/internal/pkg/authz"
	"github.com/kokolodziejska/zagrane/internal/pkg/response"
)

// RequirePermission ensures the authenticated user's role allows the action.
func RequirePermission(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !authz.Allow(domain.Role(role.(string)), action) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
