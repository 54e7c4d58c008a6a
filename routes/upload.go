package routes

import (
	"path/filepath"

	"storefront/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// uploadImage stores an admin-uploaded product or slide image and returns
// the path to put in an imageUrl field. Images go to cloudinary when a
// CLOUDINARY_URL is configured, otherwise to the local uploads directory.
func uploadImage(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to get uploaded file",
			})
		}

		if cfg.CloudinaryURL != "" {
			cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to initialize image storage",
				})
			}
			src, err := file.Open()
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to read uploaded file",
				})
			}
			defer src.Close()

			result, err := cld.Upload.Upload(c.Context(), src, uploader.UploadParams{})
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to save file",
				})
			}
			return c.JSON(fiber.Map{
				"filename": result.PublicID,
				"path":     result.SecureURL,
			})
		}

		// Generate unique filename
		ext := filepath.Ext(file.Filename)
		filename := uuid.New().String() + ext
		if err := c.SaveFile(file, filepath.Join(cfg.UploadDir, filename)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save file",
			})
		}

		return c.JSON(fiber.Map{
			"filename": filename,
			"path":     "/uploads/" + filename,
		})
	}
}
