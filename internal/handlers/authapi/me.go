package authapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wellmind-app/backend/internal/handlers/middleware"
	"github.com/wellmind-app/backend/internal/storage"
)

type userResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *Handlers) handleMe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	c.JSON(http.StatusOK, userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}

func (h *Handlers) handleListUsers(c *gin.Context) {
	users, err := storage.ListUsers(h.db)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		})
	}

	c.JSON(http.StatusOK, resp)
}
