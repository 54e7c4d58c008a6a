package routes

import (
	"encoding/json"
	"errors"

	"storefront/models"
	"storefront/store"

	"github.com/gofiber/fiber/v2"
)

func getSettings(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings, err := st.SiteSettings()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch site settings",
			})
		}
		return c.JSON(fiber.Map{"settings": settings})
	}
}

func updateSettings(st *store.Store, feed *hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings, err := st.UpdateSiteSettings(c.Body())
		if err != nil {
			var verr *store.ValidationError
			if errors.As(err, &verr) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error":  "Invalid settings data",
					"fields": verr.Fields,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update site settings",
			})
		}

		feed.notify("settings.updated", settings)
		return c.JSON(fiber.Map{"settings": settings})
	}
}

func getHeroCarousel(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings, err := st.SiteSettings()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch hero carousel slides",
			})
		}
		return c.JSON(fiber.Map{"slides": settings.HeroCarousel})
	}
}

func updateHeroCarousel(st *store.Store, feed *hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Slides []models.HeroSlide `json:"slides"`
		}
		if err := c.BodyParser(&body); err != nil || body.Slides == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid data format. Expected array of slides",
			})
		}

		slides, err := st.UpdateHeroCarousel(body.Slides)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update hero carousel slides",
			})
		}

		feed.notify("settings.updated", fiber.Map{"heroCarousel": slides})
		return c.JSON(fiber.Map{"slides": slides})
	}
}

func getPage(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content, err := st.Page(c.Params("page"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Page not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch page content",
			})
		}
		return c.JSON(fiber.Map{"content": content})
	}
}

func updatePage(st *store.Store, feed *hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Content json.RawMessage `json:"content"`
		}
		if err := c.BodyParser(&body); err != nil || body.Content == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to parse request body",
			})
		}

		page := c.Params("page")
		content, err := st.UpdatePage(page, body.Content)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Page not found",
				})
			}
			var verr *store.ValidationError
			if errors.As(err, &verr) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Failed to parse request body",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update page content",
			})
		}

		feed.notify("page.updated", fiber.Map{"page": page, "content": content})
		return c.JSON(fiber.Map{"content": content})
	}
}
