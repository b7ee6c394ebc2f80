package model

import (
	"time"
)

// UserProfile represents the database model for the latest known user identity
type UserProfile struct {
	UserID      string    `gorm:"primaryKey;size:255"`
	DisplayName string    `gorm:"size:255"`
	Email       string    `gorm:"size:255"`
	LastUpdated time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}
