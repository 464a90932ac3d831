package auth

import (
	"errors"
	"net/http"
	"strings"

	apperrors "fitness-community-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Middleware provides bearer token authentication for API routes
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth verifies the bearer token and sets the acting user on the
// request context.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		username, err := m.service.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ErrAuthServiceUnavailable) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication service unavailable"})
			} else {
				c.JSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		c.Set("username", username)
		c.Next()
	}
}

// GetUsername is a helper function to extract the acting user from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}
