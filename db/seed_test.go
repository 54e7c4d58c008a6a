package db_test

import (
	"fmt"
	"testing"

	"storefront/db"
	"storefront/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := db.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	return database
}

func TestSeed(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, db.Seed(database))

	var categories []models.Category
	require.NoError(t, database.Find(&categories).Error)
	assert.Len(t, categories, 7)

	var products int64
	require.NoError(t, database.Model(&models.Product{}).Count(&products).Error)
	assert.EqualValues(t, 20, products)

	var settings int64
	require.NoError(t, database.Model(&models.SiteSettings{}).Count(&settings).Error)
	assert.EqualValues(t, 1, settings)

	t.Run("subcategories point at fashion", func(t *testing.T) {
		var fashion, men models.Category
		require.NoError(t, database.Where("slug = ?", "fashion").First(&fashion).Error)
		require.NoError(t, database.Where("slug = ?", "men").First(&men).Error)
		require.NotNil(t, men.ParentID)
		assert.Equal(t, fashion.ID, *men.ParentID)
		assert.Nil(t, fashion.ParentID)
	})

	t.Run("discounted product keeps its old price", func(t *testing.T) {
		var shea models.Product
		require.NoError(t, database.Where("name LIKE ?", "%Shea Butter%").First(&shea).Error)
		require.NotNil(t, shea.OldPrice)
		assert.Equal(t, 10000, *shea.OldPrice)
		assert.Less(t, shea.Price, *shea.OldPrice)
	})

	t.Run("running again is a no-op", func(t *testing.T) {
		require.NoError(t, db.Seed(database))
		var again int64
		require.NoError(t, database.Model(&models.Product{}).Count(&again).Error)
		assert.EqualValues(t, 20, again)
	})
}
