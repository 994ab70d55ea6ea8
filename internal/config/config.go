package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL        string
	GoogleClientID     string
	GoogleClientSecret string

	// Artifact storage locations inside each company's Google account.
	SharedDriveName  string
	AssetsFolderName string
	SwagFolderName   string
}

const (
	defaultSharedDriveName  = "Automated Documents"
	defaultAssetsFolderName = "assets"
	defaultSwagFolderName   = "swag"
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error in production)
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	googleClientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if googleClientID == "" || googleClientSecret == "" {
		fmt.Println("Warning: GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET not set, artifact uploads will not work")
	}

	return &Config{
		DatabaseURL:        dbURL,
		GoogleClientID:     googleClientID,
		GoogleClientSecret: googleClientSecret,
		SharedDriveName:    envOr("OPSYNC_SHARED_DRIVE", defaultSharedDriveName),
		AssetsFolderName:   envOr("OPSYNC_ASSETS_FOLDER", defaultAssetsFolderName),
		SwagFolderName:     envOr("OPSYNC_SWAG_FOLDER", defaultSwagFolderName),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
