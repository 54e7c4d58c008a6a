package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port          string `envconfig:"PORT"           default:":3000"`
	UploadDir     string `envconfig:"UPLOAD_DIR"     default:"uploads"`
	CloudinaryURL string `envconfig:"CLOUDINARY_URL"`
	Seed          bool   `envconfig:"SEED_DATA"      default:"true"`
}

// Load reads configuration from the environment, with an optional .env
// file filling in anything unset.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file (but continuing): %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
