package authapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wellmind-app/backend/internal/auth"
	"github.com/wellmind-app/backend/internal/storage"
)

type refreshTokenParams struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// handleRefresh mints a new access token against a live refresh token. The
// refresh token is not rotated: the caller keeps using the one it has
// until logout or expiry.
func (h *Handlers) handleRefresh(c *gin.Context) {
	params := &refreshTokenParams{}

	if err := c.ShouldBindJSON(params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	userID, err := h.auth.VerifyRefreshToken(params.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
			return
		}
		logger.Error().Err(err).Msg("Failed to verify refresh token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	user, err := storage.GetUserByID(h.db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
			return
		}
		logger.Error().Err(err).Msg("Database error during token refresh")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	accessToken, err := h.auth.IssueAccessToken(user)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to issue access token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, tokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: params.RefreshToken,
		TokenType:    "bearer",
	})
}

// handleLogout revokes the refresh token. It succeeds whether or not the
// token was ever issued, so repeating a logout is harmless.
func (h *Handlers) handleLogout(c *gin.Context) {
	params := &refreshTokenParams{}

	// A missing or malformed body leaves nothing to revoke, which is still
	// a successful logout.
	if err := c.ShouldBindJSON(params); err == nil {
		if err := h.auth.RevokeRefreshToken(params.RefreshToken); err != nil {
			logger.Error().Err(err).Msg("Failed to revoke refresh token")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
