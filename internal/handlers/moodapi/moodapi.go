// Package moodapi implements mood logging and the mood analytics
// endpoints.
package moodapi

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/wellmind-app/backend/internal/gormw"
	"github.com/wellmind-app/backend/internal/handlers/middleware"
	"github.com/wellmind-app/backend/internal/storage"
)

var (
	logger = log.With().Str("component", "moodapi").Logger()
)

type Handlers struct {
	db    *gormw.DB
	cache *storage.AnalyticsCache
}

func New(db *gormw.DB, cache *storage.AnalyticsCache) *Handlers {
	return &Handlers{
		db:    db,
		cache: cache,
	}
}

func (h *Handlers) RegisterHandlers(rg *gin.RouterGroup, mw *middleware.AuthMiddleware) {
	moodRoutes := rg.Group("/mood", mw.RequireAuth())
	{
		moodRoutes.POST("", h.handleAddMood)
		moodRoutes.GET("/history", h.handleMoodHistory)
	}

	analyticsRoutes := rg.Group("/analytics", mw.RequireAuth())
	{
		analyticsRoutes.GET("/mood-trend", h.handleMoodTrend)
		analyticsRoutes.GET("/mood-summary", h.handleMoodSummary)
	}
}
