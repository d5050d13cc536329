// Package chatapi implements the chat endpoints and the word frequency
// analytics over a user's messages.
package chatapi

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/wellmind-app/backend/internal/chatbot"
	"github.com/wellmind-app/backend/internal/gormw"
	"github.com/wellmind-app/backend/internal/handlers/middleware"
	"github.com/wellmind-app/backend/internal/storage"
)

var (
	logger = log.With().Str("component", "chatapi").Logger()
)

type Handlers struct {
	db        *gormw.DB
	cache     *storage.AnalyticsCache
	responder *chatbot.Responder
}

func New(db *gormw.DB, cache *storage.AnalyticsCache, responder *chatbot.Responder) *Handlers {
	return &Handlers{
		db:        db,
		cache:     cache,
		responder: responder,
	}
}

func (h *Handlers) RegisterHandlers(rg *gin.RouterGroup, mw *middleware.AuthMiddleware) {
	chatRoutes := rg.Group("/chat", mw.RequireAuth())
	{
		chatRoutes.POST("", h.handleChat)
		chatRoutes.GET("/history", h.handleChatHistory)
	}

	analyticsRoutes := rg.Group("/analytics", mw.RequireAuth())
	{
		analyticsRoutes.GET("/chat-words", h.handleChatWords)
	}
}
