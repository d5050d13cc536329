// Package middleware holds the gin middlewares shared by the API handler
// packages.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/wellmind-app/backend/internal/auth"
	"github.com/wellmind-app/backend/internal/gormw"
	"github.com/wellmind-app/backend/internal/models"
	"github.com/wellmind-app/backend/internal/storage"
)

var (
	logger = log.With().Str("component", "middleware").Logger()
)

// KeyCurrentUser is the gin context key the authenticated user is stored
// under.
const KeyCurrentUser = "current_user"

type AuthMiddleware struct {
	auth *auth.Authenticator
	db   *gormw.DB
}

func NewAuthMiddleware(a *auth.Authenticator, db *gormw.DB) *AuthMiddleware {
	return &AuthMiddleware{
		auth: a,
		db:   db,
	}
}

// RequireAuth resolves the Authorization bearer header to a user and puts
// it on the context. Missing, malformed, expired and unknown-user tokens
// all get the same 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		userID, err := m.auth.VerifyAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		user, err := storage.GetUserByID(m.db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
				return
			}
			logger.Error().Err(err).Msg("Database error resolving bearer token")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		c.Set(KeyCurrentUser, user)
		c.Next()
	}
}

// RequireRole must run after RequireAuth. A wrong role is 403, distinct
// from the 401 an unauthenticated request gets.
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user RequireAuth stored, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(KeyCurrentUser)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
