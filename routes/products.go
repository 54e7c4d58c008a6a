package routes

import (
	"errors"

	"storefront/models"
	"storefront/store"

	"github.com/gofiber/fiber/v2"
)

func listProducts(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := st.AllProducts()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch products",
			})
		}
		if products == nil {
			products = []models.Product{}
		}
		return c.JSON(fiber.Map{"products": products})
	}
}

func getProduct(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid product ID",
			})
		}

		product, err := st.ProductByID(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Product not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch product",
			})
		}

		return c.JSON(fiber.Map{"product": product})
	}
}

func listProductsByCategory(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := st.ProductsByCategory(c.Params("category"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch products by category",
			})
		}
		if products == nil {
			products = []models.Product{}
		}
		return c.JSON(fiber.Map{"products": products})
	}
}

func searchProducts(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := st.SearchProducts(c.Params("query"))
		if err != nil {
			var verr *store.ValidationError
			if errors.As(err, &verr) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Search query must be at least 2 characters",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to search products",
			})
		}
		if products == nil {
			products = []models.Product{}
		}
		return c.JSON(fiber.Map{"products": products})
	}
}

func createProduct(st *store.Store, feed *hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		product := new(models.Product)
		if err := c.BodyParser(product); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to parse request body",
			})
		}

		if err := st.CreateProduct(product); err != nil {
			var verr *store.ValidationError
			if errors.As(err, &verr) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error":  "Invalid product data",
					"fields": verr.Fields,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create product",
			})
		}

		feed.notify("product.created", product)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"product": product})
	}
}

func updateProduct(st *store.Store, feed *hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid product ID",
			})
		}

		product, err := st.UpdateProduct(uint(id), c.Body())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Product not found",
				})
			}
			var verr *store.ValidationError
			if errors.As(err, &verr) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Failed to parse request body",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update product",
			})
		}

		feed.notify("product.updated", product)
		return c.JSON(fiber.Map{"product": product})
	}
}
