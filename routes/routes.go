package routes

import (
	"storefront/config"
	"storefront/store"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes mounts the REST API, the image upload endpoint and the admin
// websocket feed. Dependencies are injected; handlers are closures over
// them.
func SetupRoutes(app *fiber.App, st *store.Store, cfg *config.Config) {
	feed := newHub()
	go feed.run()

	app.Get("/ws", feed.handler())
	app.Post("/upload", uploadImage(cfg))

	api := app.Group("/api")

	products := api.Group("/products")
	products.Get("/", listProducts(st))
	products.Get("/category/:category", listProductsByCategory(st))
	products.Get("/search/:query", searchProducts(st))
	products.Post("/", createProduct(st, feed))
	products.Get("/:id", getProduct(st))

	categories := api.Group("/categories")
	categories.Get("/", listCategories(st))
	categories.Post("/", createCategory(st))
	categories.Get("/:slug", getCategory(st))

	api.Get("/hero-carousel", getHeroCarousel(st))
	api.Get("/pages/:page", getPage(st))

	admin := api.Group("/admin")
	admin.Patch("/products/:id", updateProduct(st, feed))
	admin.Get("/settings", getSettings(st))
	admin.Patch("/settings", updateSettings(st, feed))
	admin.Patch("/hero-carousel", updateHeroCarousel(st, feed))
	admin.Patch("/pages/:page", updatePage(st, feed))
}
