// server/internal/api/middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"fleet-maintenance-api-server/internal/apperr"
	"fleet-maintenance-api-server/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	userKey  = "user"
	tokenKey = "token"
)

// Authenticator resolves a session token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.PublicUser, error)
}

// Authenticate requires a live session token in the Authorization header and puts
// the user and token in the request context.
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			status := apperr.HTTPStatus(err)
			if status == http.StatusUnauthorized {
				c.AbortWithStatusJSON(status, gin.H{"error": "Invalid or expired token"})
			} else {
				c.Error(err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		c.Set(userKey, user)
		c.Set(tokenKey, tokenString)
		c.Next()
	}
}

// CurrentUser returns the user set by Authenticate.
func CurrentUser(c *gin.Context) models.PublicUser {
	user, _ := c.Get(userKey)
	u, _ := user.(models.PublicUser)
	return u
}

func CurrentToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
