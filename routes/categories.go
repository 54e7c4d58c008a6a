package routes

import (
	"errors"

	"storefront/models"
	"storefront/store"

	"github.com/gofiber/fiber/v2"
)

func listCategories(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := st.AllCategories()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch categories",
			})
		}
		if categories == nil {
			categories = []models.Category{}
		}
		return c.JSON(fiber.Map{"categories": categories})
	}
}

func getCategory(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, err := st.CategoryBySlug(c.Params("slug"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Category not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch category",
			})
		}
		return c.JSON(fiber.Map{"category": category})
	}
}

func createCategory(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := new(models.Category)
		if err := c.BodyParser(category); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to parse request body",
			})
		}

		if err := st.CreateCategory(category); err != nil {
			var verr *store.ValidationError
			if errors.As(err, &verr) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error":  "Invalid category data",
					"fields": verr.Fields,
				})
			}
			if errors.Is(err, store.ErrConflict) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": "Category name or slug already in use",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create category",
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"category": category})
	}
}
