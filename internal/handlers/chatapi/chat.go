package chatapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wellmind-app/backend/internal/handlers/middleware"
	"github.com/wellmind-app/backend/internal/models"
	"github.com/wellmind-app/backend/internal/storage"
)

type handleChatParams struct {
	Message string `json:"message" binding:"required"`
}

type chatMessageResponse struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handlers) handleChat(c *gin.Context) {
	user := middleware.CurrentUser(c)

	params := &handleChatParams{}
	if err := c.ShouldBindJSON(params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	msg := &models.ChatMessage{
		UserID:   user.ID,
		Message:  params.Message,
		Response: h.responder.Reply(params.Message),
	}
	if err := storage.AddChatMessage(h.db, msg); err != nil {
		logger.Error().Err(err).Msg("Failed to store chat message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	h.cache.InvalidateUser(user.ID)

	c.JSON(http.StatusOK, chatMessageResponse{
		ID:        msg.ID,
		Message:   msg.Message,
		Response:  msg.Response,
		Timestamp: msg.CreatedAt,
	})
}

func (h *Handlers) handleChatHistory(c *gin.Context) {
	user := middleware.CurrentUser(c)

	msgs, err := storage.ListChatMessagesByUser(h.db, user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list chat messages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	resp := make([]chatMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		resp = append(resp, chatMessageResponse{
			ID:        m.ID,
			Message:   m.Message,
			Response:  m.Response,
			Timestamp: m.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, resp)
}
