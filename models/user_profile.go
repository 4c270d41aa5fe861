package models

import "time"

// UserProfile is a registered user. Profiles are written once at
// registration and never updated or deleted.
type UserProfile struct {
	ID                  uint      `gorm:"primaryKey" json:"-"`
	UserID              string    `gorm:"uniqueIndex;not null" json:"user_id"`
	Height              float64   `json:"height"` // cm
	Weight              float64   `json:"weight"` // kg
	Age                 int       `json:"age"`
	Gender              string    `json:"gender"`
	ActivityLevel       string    `json:"activity_level"`
	Goal                string    `json:"goal"`
	DietaryRestrictions []string  `gorm:"serializer:json" json:"dietary_restrictions"`
	HealthConditions    []string  `gorm:"serializer:json" json:"health_conditions"`
	PreferredLanguage   string    `gorm:"default:english" json:"preferred_language"`
	CreatedAt           time.Time `json:"-"`
}
