package moodapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wellmind-app/backend/internal/handlers/middleware"
	"github.com/wellmind-app/backend/internal/storage"
)

func (h *Handlers) handleMoodTrend(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if cached, ok := h.cache.Get("mood-trend", user.ID); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	points, err := storage.MoodTrendByUser(h.db, user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to compute mood trend")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	h.cache.Set("mood-trend", user.ID, points)
	c.JSON(http.StatusOK, points)
}

func (h *Handlers) handleMoodSummary(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if cached, ok := h.cache.Get("mood-summary", user.ID); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	summary, err := storage.MoodSummaryByUser(h.db, user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to compute mood summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	h.cache.Set("mood-summary", user.ID, summary)
	c.JSON(http.StatusOK, summary)
}
