package storage

import (
	"github.com/wellmind-app/backend/internal/gormw"
	"github.com/wellmind-app/backend/internal/models"
)

func AddMoodEntry(db *gormw.DB, entry *models.MoodEntry) error {
	return db.Create(entry).Error
}

func ListMoodEntriesByUser(db *gormw.DB, userID uint) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

type MoodTrendPoint struct {
	Date         string  `json:"date"`
	AverageScore float64 `json:"average_score"`
}

// MoodTrendByUser returns the per-day average mood score, oldest day first.
func MoodTrendByUser(db *gormw.DB, userID uint) ([]MoodTrendPoint, error) {
	points := []MoodTrendPoint{}
	err := db.Model(&models.MoodEntry{}).
		Select("date(created_at) as date, avg(mood_score) as average_score").
		Where("user_id = ?", userID).
		Group("date(created_at)").
		Order("date(created_at) asc").
		Scan(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

type MoodSummary struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// MoodSummaryByUser buckets entries into positive (score > 6), negative
// (score < 4) and neutral in a single aggregation query.
func MoodSummaryByUser(db *gormw.DB, userID uint) (*MoodSummary, error) {
	summary := &MoodSummary{}
	err := db.Model(&models.MoodEntry{}).
		Select(
			"coalesce(sum(case when mood_score > 6 then 1 else 0 end), 0) as positive, " +
				"coalesce(sum(case when mood_score < 4 then 1 else 0 end), 0) as negative, " +
				"coalesce(sum(case when mood_score between 4 and 6 then 1 else 0 end), 0) as neutral").
		Where("user_id = ?", userID).
		Scan(summary).Error
	if err != nil {
		return nil, err
	}
	return summary, nil
}
