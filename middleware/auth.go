package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"carenest/upstream"
	"carenest/utils"
)

// Context keys populated by the auth middleware.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
	CtxToken  = "authToken"
)

// UserAuthMiddleware validates the bearer token minted by the core API and
// stores the caller's identity. The raw token is also attached to the request
// context so every facade call forwards it verbatim.
func UserAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxRole, role)
		c.Set(CtxToken, tokenString)
		c.Request = c.Request.WithContext(upstream.WithAuthToken(c.Request.Context(), tokenString))
		c.Next()
	}
}

// AdminAuthMiddleware additionally requires the admin role. Register after
// UserAuthMiddleware.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
