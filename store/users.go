package store

import (
	"errors"

	"storefront/models"

	"gorm.io/gorm"
)

// User records exist at the storage level only; no HTTP route exposes
// them. Admin gating happens client-side.

func (s *Store) UserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateUser(user *models.User) error {
	user.ID = 0
	if err := s.check(user); err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}

	return s.db.Create(user).Error
}
