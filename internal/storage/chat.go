package storage

import (
	"github.com/wellmind-app/backend/internal/gormw"
	"github.com/wellmind-app/backend/internal/models"
)

func AddChatMessage(db *gormw.DB, msg *models.ChatMessage) error {
	return db.Create(msg).Error
}

func ListChatMessagesByUser(db *gormw.DB, userID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if err := db.Where("user_id = ?", userID).Order("created_at asc").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// ListChatMessageTextsByUser returns only the user side of the chat log,
// the input to the word frequency analytics.
func ListChatMessageTextsByUser(db *gormw.DB, userID uint) ([]string, error) {
	var texts []string
	err := db.Model(&models.ChatMessage{}).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Pluck("message", &texts).Error
	if err != nil {
		return nil, err
	}
	return texts, nil
}
