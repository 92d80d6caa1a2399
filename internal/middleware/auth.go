package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kokolodziejska/zagrane/internal/pkg/jwt"
	"github.com/kokolodziejska/zagrane/internal/pkg/response"
)

// JWTAuth authenticates requests from the access-token cookie. A Bearer
// header is accepted as a fallback for non-browser clients.
//
// On success it sets user_id (int64), role (string) and, when present in
// the claims, department_id (int64) in the Gin context.
func JWTAuth(jwtService *jwt.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, _ := c.Cookie(cookieName)

		if tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication required")
				c.Abort()
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
				c.Abort()
				return
			}
			tokenStr = parts[1]
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		if claims.DepartmentID != nil {
			c.Set("department_id", *claims.DepartmentID)
		}

		c.Next()
	}
}
