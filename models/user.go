package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex" json:"username"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
