package models

import "gorm.io/gorm"

// ChatMessage is one user message together with the bot response it got.
type ChatMessage struct {
	gorm.Model
	UserID   uint `gorm:"index"`
	Message  string
	Response string
}
