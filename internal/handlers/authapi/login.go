package authapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wellmind-app/backend/internal/storage"
)

type handleLoginParams struct {
	// The login key is the email; the field is called username to match the
	// OAuth2 password form the frontend posts.
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func (h *Handlers) handleLogin(c *gin.Context) {
	params := &handleLoginParams{}

	if err := c.ShouldBind(params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	user, err := storage.GetUserByEmail(h.db, params.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a wrong password, so callers cannot probe
			// which emails exist.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		logger.Error().Err(err).Msg("Database error during login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !user.CheckPassword(params.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	accessToken, err := h.auth.IssueAccessToken(user)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to issue access token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	refreshToken, err := h.auth.IssueRefreshToken(user)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to issue refresh token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, tokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	})
}
