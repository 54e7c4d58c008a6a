package store

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	"storefront/models"

	"gorm.io/gorm"
)

// likeEscaper neutralizes LIKE metacharacters so query text matches
// literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// AllProducts returns the full catalog. Order is not significant; callers
// re-sort and filter for display.
func (s *Store) AllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) ProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// ProductsByCategory matches the product category field case-insensitively
// against a category name or slug. An unknown category yields an empty
// result, not an error.
func (s *Store) ProductsByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("LOWER(category) = LOWER(?)", category).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts finds products whose name, description, category or
// subcategory contains query, case-insensitively. Queries shorter than two
// characters are rejected so trivial input cannot dump the whole catalog.
func (s *Store) SearchProducts(query string) ([]models.Product, error) {
	if utf8.RuneCountInString(query) < 2 {
		return nil, &ValidationError{Fields: []string{"query"}}
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	var products []models.Product
	err := s.db.Where(
		`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\' OR LOWER(sub_category) LIKE ? ESCAPE '\'`,
		pattern, pattern, pattern, pattern,
	).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct validates the payload and assigns the next sequential id.
func (s *Store) CreateProduct(product *models.Product) error {
	product.ID = 0
	if err := s.check(product); err != nil {
		return err
	}
	return s.db.Create(product).Error
}

// UpdateProduct merges a raw partial JSON payload onto the stored record:
// only fields present in the payload are overwritten, and the id never is.
// The merged record is not re-validated.
func (s *Store) UpdateProduct(id uint, patch []byte) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(patch, &product); err != nil {
		return nil, &ValidationError{Fields: []string{"body"}}
	}
	product.ID = id

	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
