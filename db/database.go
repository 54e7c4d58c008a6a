package db

import (
	"storefront/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MemoryDSN keeps the whole catalog in process memory. cache=shared pins
// every pooled connection to the same database; everything is lost on
// restart.
const MemoryDSN = "file::memory:?cache=shared"

// Open connects to the database at dsn and migrates the schema.
func Open(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(
		&models.Product{}, &models.Category{}, &models.User{}, &models.SiteSettings{},
	); err != nil {
		return nil, err
	}

	return database, nil
}
