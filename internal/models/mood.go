package models

import "gorm.io/gorm"

// MoodEntry is one self-reported mood log line. Score runs 1-10; above 6
// counts as positive, below 4 as negative in the summary analytics.
type MoodEntry struct {
	gorm.Model
	UserID    uint `gorm:"index"`
	MoodText  string
	MoodScore int
}
