package moodapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wellmind-app/backend/internal/handlers/middleware"
	"github.com/wellmind-app/backend/internal/models"
	"github.com/wellmind-app/backend/internal/storage"
)

type handleAddMoodParams struct {
	MoodText  string `json:"mood_text" binding:"required"`
	MoodScore int    `json:"mood_score" binding:"required,min=1,max=10"`
}

func (h *Handlers) handleAddMood(c *gin.Context) {
	user := middleware.CurrentUser(c)

	params := &handleAddMoodParams{}
	if err := c.ShouldBindJSON(params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mood_text is required and mood_score must be 1-10"})
		return
	}

	entry := &models.MoodEntry{
		UserID:    user.ID,
		MoodText:  params.MoodText,
		MoodScore: params.MoodScore,
	}
	if err := storage.AddMoodEntry(h.db, entry); err != nil {
		logger.Error().Err(err).Msg("Failed to store mood entry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// New data, cached analytics for this user are stale now.
	h.cache.InvalidateUser(user.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Mood entry added", "mood_id": entry.ID})
}

type moodEntryResponse struct {
	ID        uint      `json:"id"`
	MoodText  string    `json:"mood_text"`
	MoodScore int       `json:"mood_score"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handlers) handleMoodHistory(c *gin.Context) {
	user := middleware.CurrentUser(c)

	entries, err := storage.ListMoodEntriesByUser(h.db, user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list mood entries")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	resp := make([]moodEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, moodEntryResponse{
			ID:        e.ID,
			MoodText:  e.MoodText,
			MoodScore: e.MoodScore,
			Timestamp: e.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, resp)
}
