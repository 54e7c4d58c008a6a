package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storefront/config"
	"storefront/db"
	"storefront/models"
	"storefront/routes"
	"storefront/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	database, err := db.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	st := store.New(database)
	app := fiber.New()
	routes.SetupRoutes(app, st, &config.Config{UploadDir: t.TempDir()})
	return app, st
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	payload := make(map[string]json.RawMessage)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func errorMessage(t *testing.T, payload map[string]json.RawMessage) string {
	t.Helper()
	var message string
	require.NoError(t, json.Unmarshal(payload["error"], &message))
	return message
}

func TestGetProduct(t *testing.T) {
	app, st := newTestApp(t)
	created := models.Product{
		Name:        "Traditional Dashiki",
		Description: "Colorful dashiki",
		Price:       8500,
		ImageURL:    "https://example.com/dashiki.jpg",
		Category:    "Fashion",
	}
	require.NoError(t, st.CreateProduct(&created))

	t.Run("non-numeric id", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodGet, "/api/products/abc", "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid product ID", errorMessage(t, payload))
	})

	t.Run("unknown id", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodGet, "/api/products/99999", "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Product not found", errorMessage(t, payload))
	})

	t.Run("existing id", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var product models.Product
		require.NoError(t, json.Unmarshal(payload["product"], &product))
		assert.Equal(t, "Traditional Dashiki", product.Name)
	})
}

func TestListAndFilterProducts(t *testing.T) {
	app, st := newTestApp(t)
	for _, p := range []models.Product{
		{Name: "Dashiki", Description: "Men's dashiki", Price: 8500, ImageURL: "https://example.com/1.jpg", Category: "Fashion"},
		{Name: "Black Soap", Description: "Cleansing soap", Price: 5500, ImageURL: "https://example.com/2.jpg", Category: "Skincare"},
	} {
		product := p
		require.NoError(t, st.CreateProduct(&product))
	}

	t.Run("list", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodGet, "/api/products", "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var products []models.Product
		require.NoError(t, json.Unmarshal(payload["products"], &products))
		assert.Len(t, products, 2)
	})

	t.Run("category filter ignores case", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodGet, "/api/products/category/FASHION", "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var products []models.Product
		require.NoError(t, json.Unmarshal(payload["products"], &products))
		require.Len(t, products, 1)
		assert.Equal(t, "Dashiki", products[0].Name)
	})

	t.Run("unknown category is an empty array", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodGet, "/api/products/category/electronics", "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `[]`, string(payload["products"]))
	})
}

func TestSearchProducts(t *testing.T) {
	app, st := newTestApp(t)
	product := models.Product{Name: "Shea Butter Moisturizer", Description: "Pure shea butter", Price: 8750, ImageURL: "https://example.com/shea.jpg", Category: "Skincare"}
	require.NoError(t, st.CreateProduct(&product))

	t.Run("short query", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodGet, "/api/products/search/a", "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Search query must be at least 2 characters", errorMessage(t, payload))
	})

	t.Run("match", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodGet, "/api/products/search/SHEA", "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var products []models.Product
		require.NoError(t, json.Unmarshal(payload["products"], &products))
		require.Len(t, products, 1)
		assert.Equal(t, "Shea Butter Moisturizer", products[0].Name)
	})
}

func TestCreateProduct(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("missing fields are reported by name", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodPost, "/api/products", `{"price": 100}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		var fields []string
		require.NoError(t, json.Unmarshal(payload["fields"], &fields))
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "imageUrl")
	})

	t.Run("valid payload", func(t *testing.T) {
		body := `{"name": "Gele", "description": "Head wrap", "price": 6500, "imageUrl": "https://example.com/gele.jpg", "category": "Fashion"}`
		resp, payload := doRequest(t, app, http.MethodPost, "/api/products", body)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		var product models.Product
		require.NoError(t, json.Unmarshal(payload["product"], &product))
		assert.Equal(t, uint(1), product.ID)
		assert.Equal(t, "Gele", product.Name)
	})
}

func TestUpdateProduct(t *testing.T) {
	app, st := newTestApp(t)
	created := models.Product{Name: "Dashiki", Description: "Men's dashiki", Price: 8500, ImageURL: "https://example.com/1.jpg", Category: "Fashion", Rating: 4.2}
	require.NoError(t, st.CreateProduct(&created))

	t.Run("partial patch leaves other fields alone", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/admin/products/%d", created.ID), `{"price": 9000}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var product models.Product
		require.NoError(t, json.Unmarshal(payload["product"], &product))
		assert.Equal(t, 9000, product.Price)
		assert.Equal(t, "Dashiki", product.Name)
		assert.Equal(t, 4.2, product.Rating)
	})

	t.Run("unknown id", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodPatch, "/api/admin/products/99999", `{"price": 1}`)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Product not found", errorMessage(t, payload))
	})
}

func TestCategoryRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("create", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodPost, "/api/categories", `{"name": "Fashion", "slug": "fashion"}`)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		var category models.Category
		require.NoError(t, json.Unmarshal(payload["category"], &category))
		assert.Equal(t, uint(1), category.ID)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodPost, "/api/categories", `{"name": "Fashion Again", "slug": "FASHION"}`)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.Equal(t, "Category name or slug already in use", errorMessage(t, payload))
	})

	t.Run("slug lookup ignores case", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodGet, "/api/categories/FASHION", "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var category models.Category
		require.NoError(t, json.Unmarshal(payload["category"], &category))
		assert.Equal(t, "fashion", category.Slug)
	})

	t.Run("unknown slug", func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodGet, "/api/categories/electronics", "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestSettingsRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("settings are served from defaults", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodGet, "/api/admin/settings", "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var settings models.SiteSettings
		require.NoError(t, json.Unmarshal(payload["settings"], &settings))
		assert.NotEmpty(t, settings.Logo.Text)
	})

	t.Run("patch replaces only supplied sections", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodPatch, "/api/admin/settings", `{"logo": {"text": "Trossachs NG"}}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var settings models.SiteSettings
		require.NoError(t, json.Unmarshal(payload["settings"], &settings))
		assert.Equal(t, "Trossachs NG", settings.Logo.Text)
		assert.NotEmpty(t, settings.HeroCarousel)
	})

	t.Run("hero carousel round trip", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodPatch, "/api/admin/hero-carousel",
			`{"slides": [{"id": 1, "title": "New Season", "imageUrl": "https://example.com/hero.jpg"}]}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var slides []models.HeroSlide
		require.NoError(t, json.Unmarshal(payload["slides"], &slides))
		require.Len(t, slides, 1)

		resp, payload = doRequest(t, app, http.MethodGet, "/api/hero-carousel", "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.NoError(t, json.Unmarshal(payload["slides"], &slides))
		require.Len(t, slides, 1)
		assert.Equal(t, "New Season", slides[0].Title)
	})

	t.Run("carousel patch without slides", func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodPatch, "/api/admin/hero-carousel", `{}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestUploadImage(t *testing.T) {
	uploadDir := t.TempDir()
	database, err := db.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	app := fiber.New()
	routes.SetupRoutes(app, store.New(database), &config.Config{UploadDir: uploadDir})

	t.Run("missing image field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/upload", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("stores the image under a generated name", func(t *testing.T) {
		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		part, err := form.CreateFormFile("image", "hero.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png bytes"))
		require.NoError(t, err)
		require.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var payload struct {
			Filename string `json:"filename"`
			Path     string `json:"path"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.True(t, strings.HasSuffix(payload.Filename, ".png"), "extension is kept")
		assert.NotEqual(t, "hero.png", payload.Filename, "filename is regenerated")
		assert.Equal(t, "/uploads/"+payload.Filename, payload.Path)

		saved, err := os.ReadFile(filepath.Join(uploadDir, payload.Filename))
		require.NoError(t, err)
		assert.Equal(t, []byte("png bytes"), saved)
	})
}

func TestPageRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("read", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodGet, "/api/pages/about", "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var page models.PageContent
		require.NoError(t, json.Unmarshal(payload["content"], &page))
		assert.NotEmpty(t, page.Title)
	})

	t.Run("unknown page", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodGet, "/api/pages/careers", "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Page not found", errorMessage(t, payload))
	})

	t.Run("patch", func(t *testing.T) {
		resp, payload := doRequest(t, app, http.MethodPatch, "/api/admin/pages/about", `{"content": {"title": "Our Story"}}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var page models.PageContent
		require.NoError(t, json.Unmarshal(payload["content"], &page))
		assert.Equal(t, "Our Story", page.Title)
		assert.False(t, page.LastUpdated.IsZero())
	})
}
