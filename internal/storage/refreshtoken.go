package storage

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/wellmind-app/backend/internal/gormw"
	"github.com/wellmind-app/backend/internal/models"
)

var (
	logger = log.With().Str("component", "storage").Logger()
)

func AddRefreshToken(db *gormw.DB, refreshToken *models.RefreshToken) error {
	return db.Create(refreshToken).Error
}

func GetRefreshTokenBySign(db *gormw.DB, sign string) (*models.RefreshToken, error) {
	o := &models.RefreshToken{}
	err := db.Where("sign = ?", sign).First(&o).Error
	return o, err
}

// DeleteRefreshTokenBySign revokes a refresh token. Deleting an absent sign
// is not an error, which makes logout idempotent.
func DeleteRefreshTokenBySign(db *gormw.DB, sign string) error {
	return db.Where("sign = ?", sign).Delete(&models.RefreshToken{}).Error
}

func DeleteExpiredRefreshTokens(db *gormw.DB) error {
	return db.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{}).Error
}

// Refresh token rows outlive their embedded expiry unless a cleaner is registered.
func RegisterRefreshTokensCleaner(scheduler gocron.Scheduler, db *gormw.DB) {
	_, _ = scheduler.NewJob(
		gocron.CronJob(
			// 4am Daily
			"0 4 * * *",
			false,
		),
		gocron.NewTask(
			func() {
				logger.Info().Msg("Cleaning up expired refresh tokens")
				if err := DeleteExpiredRefreshTokens(db); err != nil {
					logger.Error().Err(err).Msg("Failed to clean up expired refresh tokens")
				}
			},
		),
	)
}
