package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	Name           string
	Email          string `gorm:"uniqueIndex"`
	HashedPassword string
	Role           string `gorm:"default:user"`
}

// CheckPassword returns false for a wrong password and for a malformed
// stored digest alike.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)) == nil
}
