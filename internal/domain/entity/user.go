package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
)

// UserProfile is the latest known identity of a purchasing user
type UserProfile struct {
	UserID      string
	DisplayName string
	Email       string
	LastUpdated time.Time
}

// NewUserProfile creates a profile stamped with the current time
func NewUserProfile(userID, displayName, email string, timeProvider coreport.TimeProvider) (*UserProfile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	return &UserProfile{
		UserID:      userID,
		DisplayName: strings.TrimSpace(displayName),
		Email:       strings.TrimSpace(email),
		LastUpdated: timeProvider.Now(),
	}, nil
}
