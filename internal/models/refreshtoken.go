package models

import "time"

// RefreshToken stores only the signature part of an issued refresh token.
// Revocation is deletion of the row; a signed token without a row is dead.
type RefreshToken struct {
	Sign      string `gorm:"primarykey"`
	UserID    uint   `gorm:"index"` // with index, easy to find all tokens a user has
	CreatedAt time.Time
	ExpiresAt time.Time
}
