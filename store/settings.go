package store

import (
	"encoding/json"
	"errors"
	"time"

	"storefront/models"

	"gorm.io/gorm"
)

// SiteSettings returns the settings singleton, creating it from the
// defaults when absent.
func (s *Store) SiteSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultSiteSettings()
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSiteSettings applies a top-level shallow merge: a section present
// in the payload replaces that section wholesale, absent sections stay
// untouched.
func (s *Store) UpdateSiteSettings(patch []byte) (*models.SiteSettings, error) {
	settings, err := s.SiteSettings()
	if err != nil {
		return nil, err
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(patch, &sections); err != nil {
		return nil, &ValidationError{Fields: []string{"body"}}
	}

	if raw, ok := sections["logo"]; ok {
		var logo models.Logo
		if err := json.Unmarshal(raw, &logo); err != nil {
			return nil, &ValidationError{Fields: []string{"logo"}}
		}
		settings.Logo = logo
	}
	if raw, ok := sections["footer"]; ok {
		var footer models.Footer
		if err := json.Unmarshal(raw, &footer); err != nil {
			return nil, &ValidationError{Fields: []string{"footer"}}
		}
		settings.Footer = footer
	}
	if raw, ok := sections["heroCarousel"]; ok {
		var slides []models.HeroSlide
		if err := json.Unmarshal(raw, &slides); err != nil {
			return nil, &ValidationError{Fields: []string{"heroCarousel"}}
		}
		settings.HeroCarousel = slides
	}
	if raw, ok := sections["pages"]; ok {
		var pages map[string]models.PageContent
		if err := json.Unmarshal(raw, &pages); err != nil {
			return nil, &ValidationError{Fields: []string{"pages"}}
		}
		settings.Pages = pages
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateHeroCarousel replaces the carousel slides wholesale.
func (s *Store) UpdateHeroCarousel(slides []models.HeroSlide) ([]models.HeroSlide, error) {
	settings, err := s.SiteSettings()
	if err != nil {
		return nil, err
	}
	settings.HeroCarousel = slides
	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings.HeroCarousel, nil
}

// Page returns one page's content by key ("about", "contact", ...).
func (s *Store) Page(page string) (*models.PageContent, error) {
	settings, err := s.SiteSettings()
	if err != nil {
		return nil, err
	}
	content, ok := settings.Pages[page]
	if !ok {
		return nil, ErrNotFound
	}
	return &content, nil
}

// UpdatePage merges a partial payload onto an existing page and stamps the
// update time. Unknown pages are not created.
func (s *Store) UpdatePage(page string, patch []byte) (*models.PageContent, error) {
	settings, err := s.SiteSettings()
	if err != nil {
		return nil, err
	}
	content, ok := settings.Pages[page]
	if !ok {
		return nil, ErrNotFound
	}

	if err := json.Unmarshal(patch, &content); err != nil {
		return nil, &ValidationError{Fields: []string{"content"}}
	}
	content.LastUpdated = time.Now()
	settings.Pages[page] = content

	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return &content, nil
}
