package store

import (
	"errors"

	"storefront/models"

	"gorm.io/gorm"
)

func (s *Store) AllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) CategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("LOWER(slug) = LOWER(?)", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// CreateCategory assigns the next sequential id. Duplicate names or slugs
// (case-insensitive) fail with ErrConflict; otherwise CategoryBySlug would
// become ambiguous.
func (s *Store) CreateCategory(category *models.Category) error {
	category.ID = 0
	if err := s.check(category); err != nil {
		return err
	}

	var count int64
	err := s.db.Model(&models.Category{}).
		Where("LOWER(name) = LOWER(?) OR LOWER(slug) = LOWER(?)", category.Name, category.Slug).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}

	return s.db.Create(category).Error
}
