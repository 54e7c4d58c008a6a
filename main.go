package main

import (
	"log"
	"os"

	"storefront/config"
	"storefront/db"
	"storefront/routes"
	"storefront/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Open the in-memory database
	database, err := db.Open(db.MemoryDSN)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	if cfg.Seed {
		if err := db.Seed(database); err != nil {
			log.Fatal("Failed to seed catalog:", err)
		}
	}

	// Create uploads directory if it doesn't exist
	if _, err := os.Stat(cfg.UploadDir); os.IsNotExist(err) {
		os.Mkdir(cfg.UploadDir, 0755)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(recover.New())

	// Serve static files
	app.Static("/uploads", "./"+cfg.UploadDir)

	// Setup routes
	routes.SetupRoutes(app, store.New(database), cfg)

	// Start server
	log.Fatal(app.Listen(cfg.Port))
}
