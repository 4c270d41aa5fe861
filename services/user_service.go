package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bharathz8/Nutri-Go/models"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// UserService owns profile persistence. Profiles are created once and
// never mutated.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register stores a new profile. The preferred language is clamped to
// a supported one before the row is written.
func (s *UserService) Register(profile *models.UserProfile) error {
	var existing models.UserProfile
	err := s.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	profile.PreferredLanguage = models.ClampLanguage(profile.PreferredLanguage)
	return s.db.Create(profile).Error
}

func (s *UserService) Get(userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
