// internal/middleware/session.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/cleantheory-backend/internal/utils"
)

// SessionRequired resolves the cart session from a Bearer session token.
func SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(token)
		if err != nil {
			utils.UnauthorizedResponse(c, "Session token is invalid or expired")
			c.Abort()
			return
		}

		c.Set(utils.SessionIDKey, claims.SessionID)
		c.Next()
	}
}

// OptionalSession sets the session id when a valid token is present and
// otherwise lets the request through untouched.
func OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		if claims, err := utils.ValidateSessionToken(token); err == nil {
			c.Set(utils.SessionIDKey, claims.SessionID)
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	// Extract token from "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
