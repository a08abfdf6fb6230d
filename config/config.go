package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	MONGOSTRING string
	JWT_SECRET  string
	BaseURL     string
	EmailHost   string
	EmailUser   string
	EmailPass   string
}

// LoadConfig loads configuration from .env file
func LoadConfig() *AppConfig {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file (might not exist in production): %v", err)
	}

	secret := getEnv("JWT_SECRET", "")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set, token signing requires a secret")
	}
	if len(secret) < 32 {
		log.Fatalf("JWT_SECRET must be at least 32 characters long. Current length: %d", len(secret))
	}

	port := getEnv("PORT", "5000")

	return &AppConfig{
		Port:        port,
		MONGOSTRING: getEnv("MONGOSTRING", ""),
		JWT_SECRET:  secret,
		BaseURL:     getEnv("BASE_URL", "http://localhost:"+port),
		EmailHost:   getEnv("EMAIL_HOST", ""),
		EmailUser:   getEnv("EMAIL_USER", ""),
		EmailPass:   getEnv("EMAIL_PASS", ""),
	}
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
